package content

// iconGlyphs es el registro cerrado de iconos referenciados por nombre desde
// feature cards, component grids y alertas. Una clave desconocida no produce
// nada (sin error).
var iconGlyphs = map[string]string{
	"book":       "📖",
	"code":       "💻",
	"component":  "🧩",
	"database":   "🗄️",
	"device":     "📱",
	"folder":     "📁",
	"gallery":    "🖼️",
	"layout":     "📐",
	"navigation": "🧭",
	"rocket":     "🚀",
	"state":      "🔄",
	"style":      "🎨",
	"terminal":   "⌨️",
	"web":        "🌐",
}

// IconGlyph resuelve un nombre de icono; ok es false para claves desconocidas.
func IconGlyph(name string) (string, bool) {
	glyph, ok := iconGlyphs[name]
	return glyph, ok
}

// AlertStyle es el par fijo color/icono de cada variante de alerta.
type AlertStyle struct {
	Class string
	Icon  string
}

var alertStyles = map[AlertType]AlertStyle{
	AlertInfo:    {Class: "alert-info", Icon: "ℹ️"},
	AlertWarning: {Class: "alert-warning", Icon: "⚠️"},
	AlertTip:     {Class: "alert-tip", Icon: "💡"},
}

// StyleForAlert devuelve el estilo de la variante; las variantes fuera del
// conjunto cerrado caen en info.
func StyleForAlert(t AlertType) AlertStyle {
	if style, ok := alertStyles[t]; ok {
		return style
	}
	return alertStyles[AlertInfo]
}
