package content

// languageAliases normaliza los lenguajes del contenido antes de pasarlos al
// resaltador de sintaxis. Mapa cerrado; el resto pasa tal cual.
var languageAliases = map[string]string{
	"jsx":  "javascript",
	"tsx":  "typescript",
	"bash": "shell",
}

func NormalizeLanguage(language string) string {
	if alias, ok := languageAliases[language]; ok {
		return alias
	}
	return language
}
