package ws

import (
	"encoding/json"
	"time"
)

type CareerPopulatedEvent struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	SkillsAdded    int    `json:"skills_added"`
	ResourcesAdded int    `json:"resources_added"`
	Timestamp      string `json:"timestamp"`
}

// Notifier pushes domain events to every connected websocket client.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) CareerPopulated(title string, skillsAdded, resourcesAdded int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := CareerPopulatedEvent{
		Type:           "career_populated",
		Title:          title,
		SkillsAdded:    skillsAdded,
		ResourcesAdded: resourcesAdded,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
