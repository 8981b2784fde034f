package content

import "fmt"

// WidgetKey identifica de forma estable un quiz o una tarea dentro del
// temario: único entre bloques y topics, constante entre renderizados.
func WidgetKey(topicID string, partIndex int) string {
	return fmt.Sprintf("%s-%d", topicID, partIndex)
}
