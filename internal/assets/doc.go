// Package assets provides the stylesheets used by the chrome engine.
//
// Styles are looked up by name (without the .css extension). Built-in
// styles are embedded at compile time; a Resolver can put a directory of
// custom styles in front of them:
//
//	{dir}/
//	└── styles/
//	    └── {name}.css
//
// Names are validated and filesystem paths are checked for containment, so
// a style name can never reach outside its directory.
package assets
