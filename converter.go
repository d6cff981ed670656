package docgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-docgen/internal/assets"
	"github.com/alnah/go-docgen/internal/layout"
	"github.com/alnah/go-docgen/internal/pipeline"
)

var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ recordFlattener               = (*pipeline.Flattener)(nil)
)

// recordFlattener turns Markdown into native layout records.
type recordFlattener interface {
	FlattenMarkdown(ctx context.Context, content string) ([]layout.Record, error)
}

// Converter renders documents with the configured engine. Create it with
// NewConverter and Close it when done. A Converter is not safe for
// concurrent use; see ConverterPool.
type Converter struct {
	cfg           converterConfig
	theme         Theme
	css           string
	styleLoader   assets.StyleLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	flattener     recordFlattener
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter. It validates the engine, theme and
// style; the browser itself is only started by the first chrome
// conversion.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:  defaultTimeout,
			engine:   EngineAuto,
			producer: defaultProducer,
			style:    assets.DefaultStyleName,
			geometry: layout.DefaultGeometry(),
			now:      time.Now,
		},
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
		flattener:     pipeline.NewFlattener(),
	}

	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	if err := c.cfg.theme.Validate(); err != nil {
		return nil, err
	}
	c.theme = c.cfg.theme.resolved()

	if err := c.cfg.geometry.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayout, err)
	}

	if engine != EngineNative {
		if err := c.resolveStyle(); err != nil {
			return nil, err
		}
		if c.pdfConverter == nil {
			c.pdfConverter = newRodConverter(c.cfg.timeout)
		}
	}

	return c, nil
}

// resolveStyle loads the stylesheet and appends the page and theme rules.
func (c *Converter) resolveStyle() error {
	if c.styleLoader == nil {
		resolver, err := assets.NewResolver(c.cfg.styleDir)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.styleLoader = resolver
	}

	css, err := c.styleLoader.LoadStyle(c.cfg.style)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return fmt.Errorf("%w: %v (built-in: %s)", ErrStyleNotFound, err, strings.Join(Styles(), ", "))
		}
		return fmt.Errorf("loading style %q: %w", c.cfg.style, err)
	}

	c.css = buildPageCSS(c.cfg.geometry) + buildThemeCSS(c.theme) + css
	return nil
}

// Styles lists the built-in style names accepted by WithStyle.
func Styles() []string {
	return assets.NewEmbeddedLoader().Styles()
}

// Engine reports the configured engine.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// document is an Input after front matter and preprocessing.
type document struct {
	title    string
	author   string
	markdown string
	records  []layout.Record // nil when the source is Markdown
}

// Convert renders input to PDF. With EngineAuto a browser failure
// switches to the native engine; cancellation of ctx never does. Internal
// panics are returned as errors.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	doc, err := c.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	switch c.cfg.engine {
	case EngineNative:
		return c.renderNative(ctx, doc)
	case EngineChrome:
		return c.renderChrome(ctx, doc)
	}

	res, err := c.renderChrome(ctx, doc)
	if err == nil {
		return res, nil
	}
	if ctx.Err() != nil || !isBrowserFailure(err) {
		return nil, err
	}

	res, nerr := c.renderNative(ctx, doc)
	if nerr != nil {
		return nil, errors.Join(err, nerr)
	}
	res.Fallback = err
	return res, nil
}

// prepare validates input and resolves its metadata.
func (c *Converter) prepare(ctx context.Context, input Input) (*document, error) {
	hasMarkdown := input.Markdown != ""
	hasRecords := len(input.Records) > 0
	if hasMarkdown == hasRecords {
		return nil, ErrEmptyInput
	}

	doc := &document{title: input.Title, author: input.Author}

	if hasRecords {
		doc.records = make([]layout.Record, len(input.Records))
		for i, r := range input.Records {
			doc.records[i] = layout.Record(r)
		}
		return doc, nil
	}

	fm, body, err := pipeline.SplitFrontMatter(input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	if doc.title == "" {
		doc.title = fm.Title
	}
	if doc.author == "" {
		doc.author = fm.Author
	}

	doc.markdown = c.preprocessor.PreprocessMarkdown(ctx, body)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

// renderChrome prints the document with the browser.
func (c *Converter) renderChrome(ctx context.Context, doc *document) (*ConvertResult, error) {
	if c.pdfConverter == nil {
		return nil, fmt.Errorf("%w: chrome engine not configured", ErrBrowserConnect)
	}

	var htmlContent string
	if doc.records != nil {
		htmlContent = pipeline.RecordsToHTML(doc.records, doc.title)
	} else {
		var err error
		htmlContent, err = c.htmlConverter.ToHTML(ctx, doc.markdown, doc.title)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
	}

	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, c.css)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := c.pdfConverter.ToPDF(ctx, htmlContent, pdfOptionsFor(c.cfg.geometry))
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return &ConvertResult{
		PDF:    data,
		HTML:   []byte(htmlContent),
		Engine: EngineChrome,
	}, nil
}

// Close releases the browser, if one was started.
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}
