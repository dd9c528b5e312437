package localid

import "strings"

// MQTTString renders l for use as an MQTT topic: slashes inside path items
// are replaced with underscores, and an absent optional slot is rendered
// as "_" so the positions of the remaining slots stay fixed. A
// supplemented convenience mirroring the Python SDK's
// LocalId.to_mqtt_string(), not specified by the core's string format but
// useful to any transport collaborator building on top of it.
func (l *LocalId) MQTTString() string {
	var sb strings.Builder
	sb.WriteString("dnv-v2/vis-")
	sb.WriteString(l.b.vis.String())
	sb.WriteString("/")
	sb.WriteString(mqttItem(itemString(l.b.primaryItem, l.b.verbose)))

	sb.WriteString("/")
	if l.b.secondaryItem != nil {
		sb.WriteString(mqttItem(itemString(l.b.secondaryItem, l.b.verbose)))
	} else {
		sb.WriteString("_")
	}

	for _, name := range metaOrder {
		tag, ok := l.b.tags[name]
		sb.WriteString("/")
		if !ok {
			sb.WriteString("_")
			continue
		}
		prefix, _ := name.TagPrefix()
		sb.WriteString(prefix)
		sb.WriteString(string(tag.Prefix()))
		sb.WriteString(tag.Value)
	}
	return sb.String()
}

func mqttItem(s string) string {
	return strings.ReplaceAll(s, "/", "_")
}
