package el

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Global attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with the Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Download sets the download boolean attribute.
func Download() Attr { return attr("download", true) }

// Hreflang sets the hreflang attribute.
func Hreflang(lang string) Attr { return attr("hreflang", lang) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return attr("placeholder", text) }

// Disabled sets the disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// Readonly sets the readonly attribute.
func Readonly() Attr { return attr("readonly", true) }

// Required sets the required attribute.
func Required() Attr { return attr("required", true) }

// Checked sets the checked attribute.
func Checked() Attr { return attr("checked", true) }

// Selected sets the selected attribute.
func Selected() Attr { return attr("selected", true) }

// Multiple sets the multiple attribute.
func Multiple() Attr { return attr("multiple", true) }

// Autofocus sets the autofocus attribute.
func Autofocus() Attr { return attr("autofocus", true) }

// Pattern sets the pattern attribute.
func Pattern(pattern string) Attr { return attr("pattern", pattern) }

// Min sets the min attribute.
func Min(value string) Attr { return attr("min", value) }

// Max sets the max attribute.
func Max(value string) Attr { return attr("max", value) }

// Step sets the step attribute.
func Step(value string) Attr { return attr("step", value) }

// Rows sets the rows attribute.
func Rows(n int) Attr { return attr("rows", n) }

// Cols sets the cols attribute.
func Cols(n int) Attr { return attr("cols", n) }

// Action sets the action attribute.
func Action(url string) Attr { return attr("action", url) }

// Method sets the method attribute.
func Method(method string) Attr { return attr("method", method) }

// Enctype sets the enctype attribute.
func Enctype(enctype string) Attr { return attr("enctype", enctype) }

// Novalidate sets the novalidate attribute.
func Novalidate() Attr { return attr("novalidate", true) }

// For sets the for attribute.
func For(id string) Attr { return attr("for", id) }

// Media attributes

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", w) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", h) }

// Loading sets the loading attribute.
func Loading(mode string) Attr { return attr("loading", mode) }

// Srcset sets the srcset attribute.
func Srcset(srcset string) Attr { return attr("srcset", srcset) }

// SizesAttr sets the sizes attribute.
func SizesAttr(sizes string) Attr { return attr("sizes", sizes) }

// Controls sets the controls attribute.
func Controls() Attr { return attr("controls", true) }

// Autoplay sets the autoplay attribute.
func Autoplay() Attr { return attr("autoplay", true) }

// Loop sets the loop attribute.
func Loop() Attr { return attr("loop", true) }

// Muted sets the muted attribute.
func Muted() Attr { return attr("muted", true) }

// Playsinline sets the playsinline attribute.
func Playsinline() Attr { return attr("playsinline", true) }

// Preload sets the preload attribute.
func Preload(mode string) Attr { return attr("preload", mode) }

// Poster sets the poster attribute.
func Poster(url string) Attr { return attr("poster", url) }

// Sandbox sets the sandbox attribute.
func Sandbox(value string) Attr { return attr("sandbox", value) }

// Allow sets the allow attribute.
func Allow(value string) Attr { return attr("allow", value) }

// Allowfullscreen sets the allowfullscreen attribute.
func Allowfullscreen() Attr { return attr("allowfullscreen", true) }

// Table attributes

// Colspan sets the colspan attribute.
func Colspan(n int) Attr { return attr("colspan", n) }

// Rowspan sets the rowspan attribute.
func Rowspan(n int) Attr { return attr("rowspan", n) }

// Scope sets the scope attribute.
func Scope(scope string) Attr { return attr("scope", scope) }

// Document attributes

// Charset sets the charset attribute.
func Charset(charset string) Attr { return attr("charset", charset) }

// Content sets the content attribute.
func Content(content string) Attr { return attr("content", content) }

// HttpEquiv sets the http-equiv attribute.
func HttpEquiv(value string) Attr { return attr("http-equiv", value) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Scripting attributes

// Defer_ sets the defer attribute (named to avoid the keyword).
func Defer_() Attr { return attr("defer", true) }

// Async sets the async attribute.
func Async() Attr { return attr("async", true) }

// Crossorigin sets the crossorigin attribute.
func Crossorigin(value string) Attr { return attr("crossorigin", value) }

// Integrity sets the integrity attribute.
func Integrity(value string) Attr { return attr("integrity", value) }

// Misc attributes

// Data creates a data-* attribute.
// Example: Data("id", "123") renders data-id="123".
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// Open sets the open attribute.
func Open() Attr { return attr("open", true) }

// Datetime sets the datetime attribute.
func Datetime(value string) Attr { return attr("datetime", value) }

// AttrIf returns a when condition is true and the empty attribute
// otherwise; empty attributes are ignored by the constructors.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// ClassIf conditionally sets the class attribute.
func ClassIf(condition bool, class string) Attr {
	return AttrIf(condition, Class(class))
}
