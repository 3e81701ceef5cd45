package el

import (
	"github.com/htmltree-dev/htmltree"
)

// Aliases for the htmltree primitives used by the DSL.
type Element = htmltree.Element
type Builder = htmltree.Builder
type Attr = htmltree.Attr
type AttrSpec = htmltree.AttrSpec
type View = htmltree.View

// val declares a value-kind schema attribute.
func val(name string) AttrSpec {
	return AttrSpec{Name: name, Kind: htmltree.KindValue}
}

// flag declares a boolean-kind schema attribute.
func flag(name string) AttrSpec {
	return AttrSpec{Name: name, Kind: htmltree.KindBool}
}

func attrs(specs ...AttrSpec) []AttrSpec {
	return specs
}

// newElement splits args into attribute values and content, then
// instantiates the generic element with the tag's schema. Attribute values
// are applied in call order; everything else becomes content in call order.
func newElement(tag string, args []any, required, optional []AttrSpec) *Element {
	applied := make([]Attr, 0, len(args))
	content := make([]any, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			applied = append(applied, v)
		case []Attr:
			applied = append(applied, v...)
		default:
			content = append(content, v)
		}
	}
	return htmltree.NewElement(tag, content, required, optional).Apply(applied...)
}

// Attribute schemas for the tags that declare any. Required attributes are
// listed first; declaration order is rendering order.
var (
	anchorRequired   = attrs(val("href"))
	anchorOptional   = attrs(val("target"), val("rel"), flag("download"), val("hreflang"))
	imgRequired      = attrs(val("src"), val("alt"))
	imgOptional      = attrs(val("width"), val("height"), val("loading"), val("srcset"), val("sizes"))
	videoOptional    = attrs(val("src"), flag("controls"), flag("autoplay"), flag("loop"), flag("muted"), flag("playsinline"), val("poster"), val("preload"), val("width"), val("height"))
	audioOptional    = attrs(val("src"), flag("controls"), flag("autoplay"), flag("loop"), flag("muted"), val("preload"))
	inputOptional    = attrs(val("type"), val("name"), val("value"), val("placeholder"), val("min"), val("max"), val("step"), val("pattern"), flag("disabled"), flag("required"), flag("checked"), flag("readonly"), flag("multiple"), flag("autofocus"))
	formOptional     = attrs(val("action"), val("method"), val("enctype"), flag("novalidate"))
	buttonOptional   = attrs(val("type"), val("name"), val("value"), flag("disabled"), flag("autofocus"))
	labelOptional    = attrs(val("for"))
	optgroupOptional = attrs(val("label"), flag("disabled"))
	selectOptional   = attrs(val("name"), val("size"), flag("disabled"), flag("multiple"), flag("required"))
	optionOptional   = attrs(val("value"), flag("selected"), flag("disabled"))
	textareaOptional = attrs(val("name"), val("rows"), val("cols"), val("placeholder"), val("wrap"), flag("disabled"), flag("required"), flag("readonly"))
	iframeOptional   = attrs(val("src"), val("width"), val("height"), val("sandbox"), val("allow"), flag("allowfullscreen"))
	scriptOptional   = attrs(val("src"), val("type"), val("charset"), flag("defer"), flag("async"))
	linkOptional     = attrs(val("href"), val("rel"), val("type"), val("crossorigin"), val("integrity"))
	metaOptional     = attrs(val("charset"), val("name"), val("content"), val("http-equiv"))
	baseOptional     = attrs(val("href"), val("target"))
	cellOptional     = attrs(val("colspan"), val("rowspan"), val("scope"), val("headers"))
	olOptional       = attrs(val("type"), val("start"), flag("reversed"))
	timeOptional     = attrs(val("datetime"))
	modOptional      = attrs(val("cite"), val("datetime"))
	quoteOptional    = attrs(val("cite"))
	sourceOptional   = attrs(val("src"), val("srcset"), val("type"), val("media"))
	trackOptional    = attrs(val("src"), val("kind"), val("srclang"), val("label"), flag("default"))
	detailsOptional  = attrs(flag("open"))
	areaOptional     = attrs(val("href"), val("alt"), val("coords"), val("shape"))
	colOptional      = attrs(val("span"))
	progressOptional = attrs(val("value"), val("max"))
	meterOptional    = attrs(val("value"), val("min"), val("max"), val("low"), val("high"), val("optimum"))
	outputOptional   = attrs(val("for"), val("name"))
	canvasOptional   = attrs(val("width"), val("height"))
	embedOptional    = attrs(val("src"), val("type"), val("width"), val("height"))
	objectOptional   = attrs(val("data"), val("type"), val("width"), val("height"))
	htmlOptional     = attrs(val("lang"))
)

// Document structure elements

func Html(args ...any) *Element  { return newElement("html", args, nil, htmlOptional) }
func Head(args ...any) *Element  { return newElement("head", args, nil, nil) }
func Body(args ...any) *Element  { return newElement("body", args, nil, nil) }
func Title(args ...any) *Element { return newElement("title", args, nil, nil) }
func Meta(args ...any) *Element  { return newElement("meta", args, nil, metaOptional) }
func Link(args ...any) *Element  { return newElement("link", args, nil, linkOptional) }
func Base(args ...any) *Element  { return newElement("base", args, nil, baseOptional) }
func Style(args ...any) *Element { return newElement("style", args, nil, nil) }

// Content sectioning elements

func Header(args ...any) *Element  { return newElement("header", args, nil, nil) }
func Footer(args ...any) *Element  { return newElement("footer", args, nil, nil) }
func Main(args ...any) *Element    { return newElement("main", args, nil, nil) }
func Nav(args ...any) *Element     { return newElement("nav", args, nil, nil) }
func Section(args ...any) *Element { return newElement("section", args, nil, nil) }
func Article(args ...any) *Element { return newElement("article", args, nil, nil) }
func Aside(args ...any) *Element   { return newElement("aside", args, nil, nil) }
func Address(args ...any) *Element { return newElement("address", args, nil, nil) }
func H1(args ...any) *Element      { return newElement("h1", args, nil, nil) }
func H2(args ...any) *Element      { return newElement("h2", args, nil, nil) }
func H3(args ...any) *Element      { return newElement("h3", args, nil, nil) }
func H4(args ...any) *Element      { return newElement("h4", args, nil, nil) }
func H5(args ...any) *Element      { return newElement("h5", args, nil, nil) }
func H6(args ...any) *Element      { return newElement("h6", args, nil, nil) }

// Text content elements

func Div(args ...any) *Element        { return newElement("div", args, nil, nil) }
func P(args ...any) *Element          { return newElement("p", args, nil, nil) }
func Span(args ...any) *Element       { return newElement("span", args, nil, nil) }
func Pre(args ...any) *Element        { return newElement("pre", args, nil, nil) }
func Blockquote(args ...any) *Element { return newElement("blockquote", args, nil, quoteOptional) }
func Ul(args ...any) *Element         { return newElement("ul", args, nil, nil) }
func Ol(args ...any) *Element         { return newElement("ol", args, nil, olOptional) }
func Li(args ...any) *Element         { return newElement("li", args, nil, nil) }
func Dl(args ...any) *Element         { return newElement("dl", args, nil, nil) }
func Dt(args ...any) *Element         { return newElement("dt", args, nil, nil) }
func Dd(args ...any) *Element         { return newElement("dd", args, nil, nil) }
func Hr(args ...any) *Element         { return newElement("hr", args, nil, nil) }
func Figure(args ...any) *Element     { return newElement("figure", args, nil, nil) }
func Figcaption(args ...any) *Element { return newElement("figcaption", args, nil, nil) }

// Inline text semantics

func A(args ...any) *Element      { return newElement("a", args, anchorRequired, anchorOptional) }
func Strong(args ...any) *Element { return newElement("strong", args, nil, nil) }
func Em(args ...any) *Element     { return newElement("em", args, nil, nil) }
func B(args ...any) *Element      { return newElement("b", args, nil, nil) }
func I(args ...any) *Element      { return newElement("i", args, nil, nil) }
func U(args ...any) *Element      { return newElement("u", args, nil, nil) }
func S(args ...any) *Element      { return newElement("s", args, nil, nil) }
func Small(args ...any) *Element  { return newElement("small", args, nil, nil) }
func Mark(args ...any) *Element   { return newElement("mark", args, nil, nil) }
func Sub(args ...any) *Element    { return newElement("sub", args, nil, nil) }
func Sup(args ...any) *Element    { return newElement("sup", args, nil, nil) }
func Code(args ...any) *Element   { return newElement("code", args, nil, nil) }
func Kbd(args ...any) *Element    { return newElement("kbd", args, nil, nil) }
func Samp(args ...any) *Element   { return newElement("samp", args, nil, nil) }
func Var(args ...any) *Element    { return newElement("var", args, nil, nil) }
func Abbr(args ...any) *Element   { return newElement("abbr", args, nil, nil) }
func Time_(args ...any) *Element  { return newElement("time", args, nil, timeOptional) }
func Cite(args ...any) *Element   { return newElement("cite", args, nil, nil) }
func Q(args ...any) *Element      { return newElement("q", args, nil, quoteOptional) }
func Dfn(args ...any) *Element    { return newElement("dfn", args, nil, nil) }
func Del(args ...any) *Element    { return newElement("del", args, nil, modOptional) }
func Ins(args ...any) *Element    { return newElement("ins", args, nil, modOptional) }
func Br(args ...any) *Element     { return newElement("br", args, nil, nil) }
func Wbr(args ...any) *Element    { return newElement("wbr", args, nil, nil) }

// Form elements

func Form(args ...any) *Element     { return newElement("form", args, nil, formOptional) }
func Input(args ...any) *Element    { return newElement("input", args, nil, inputOptional) }
func Textarea(args ...any) *Element { return newElement("textarea", args, nil, textareaOptional) }
func SelectEl(args ...any) *Element { return newElement("select", args, nil, selectOptional) }
func Option(args ...any) *Element   { return newElement("option", args, nil, optionOptional) }
func Optgroup(args ...any) *Element { return newElement("optgroup", args, nil, optgroupOptional) }
func Button(args ...any) *Element   { return newElement("button", args, nil, buttonOptional) }
func Label(args ...any) *Element    { return newElement("label", args, nil, labelOptional) }
func Fieldset(args ...any) *Element { return newElement("fieldset", args, nil, nil) }
func Legend(args ...any) *Element   { return newElement("legend", args, nil, nil) }
func Datalist(args ...any) *Element { return newElement("datalist", args, nil, nil) }
func Output(args ...any) *Element   { return newElement("output", args, nil, outputOptional) }
func Progress(args ...any) *Element { return newElement("progress", args, nil, progressOptional) }
func Meter(args ...any) *Element    { return newElement("meter", args, nil, meterOptional) }

// Table elements

func Table(args ...any) *Element    { return newElement("table", args, nil, nil) }
func Thead(args ...any) *Element    { return newElement("thead", args, nil, nil) }
func Tbody(args ...any) *Element    { return newElement("tbody", args, nil, nil) }
func Tfoot(args ...any) *Element    { return newElement("tfoot", args, nil, nil) }
func Tr(args ...any) *Element       { return newElement("tr", args, nil, nil) }
func Th(args ...any) *Element       { return newElement("th", args, nil, cellOptional) }
func Td(args ...any) *Element       { return newElement("td", args, nil, cellOptional) }
func Caption(args ...any) *Element  { return newElement("caption", args, nil, nil) }
func Colgroup(args ...any) *Element { return newElement("colgroup", args, nil, colOptional) }
func Col(args ...any) *Element      { return newElement("col", args, nil, colOptional) }

// Media elements

func Picture(args ...any) *Element { return newElement("picture", args, nil, nil) }
func Source(args ...any) *Element  { return newElement("source", args, nil, sourceOptional) }
func Video(args ...any) *Element   { return newElement("video", args, nil, videoOptional) }
func Audio(args ...any) *Element   { return newElement("audio", args, nil, audioOptional) }
func Track(args ...any) *Element   { return newElement("track", args, nil, trackOptional) }
func Iframe(args ...any) *Element  { return newElement("iframe", args, nil, iframeOptional) }
func Embed(args ...any) *Element   { return newElement("embed", args, nil, embedOptional) }
func Object(args ...any) *Element  { return newElement("object", args, nil, objectOptional) }
func Canvas(args ...any) *Element  { return newElement("canvas", args, nil, canvasOptional) }
func Area(args ...any) *Element    { return newElement("area", args, nil, areaOptional) }

// Interactive elements

func Details(args ...any) *Element { return newElement("details", args, nil, detailsOptional) }
func Summary(args ...any) *Element { return newElement("summary", args, nil, nil) }
func Dialog(args ...any) *Element  { return newElement("dialog", args, nil, detailsOptional) }
func Menu(args ...any) *Element    { return newElement("menu", args, nil, nil) }

// Scripting elements

func Script(args ...any) *Element   { return newElement("script", args, nil, scriptOptional) }
func Noscript(args ...any) *Element { return newElement("noscript", args, nil, nil) }
func Template(args ...any) *Element { return newElement("template", args, nil, nil) }

// Custom creates an element with a custom tag name and no declared schema.
func Custom(tag string, args ...any) *Element {
	return newElement(tag, args, nil, nil)
}

// Img returns an image chain. With both the source and the alternate text
// given it is complete immediately and renders identically to setting the
// two fields through the chain; with fewer arguments it stays a builder
// until both required attributes are set, in either order.
func Img(srcAlt ...string) *Builder {
	b := htmltree.NewBuilder(
		htmltree.NewElement("img", nil, imgRequired, imgOptional),
		"src", "alt",
	)
	return htmltree.Select(len(srcAlt),
		htmltree.Lazy(2, func() *Builder { return b.Set("src", srcAlt[0]).Set("alt", srcAlt[1]) }),
		htmltree.Lazy(1, func() *Builder { return b.Set("src", srcAlt[0]) }),
		htmltree.Fallback[int](b),
	)
}
