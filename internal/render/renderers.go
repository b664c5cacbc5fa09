package render

import "chatrender/internal/model"

func userNode(kind model.Kind, avatar string, userID int, viewer ViewerID, content Content) Node {
	reversed := ViewerID(userID) != viewer
	return Node{
		Source:         kind.Source,
		ContainerClass: containerClass(kind.Source, reversed),
		ContentClass:   contentClass(kind),
		Avatar:         avatar,
		Reversed:       reversed,
		Content:        content,
	}
}

func renderUserImage(m model.UserImageMessage, viewer ViewerID) Node {
	return userNode(m.Kind(), m.Avatar, m.UserID, viewer, Content{Image: m.ImageURL})
}

func renderUserText(m model.UserTextMessage, viewer ViewerID) Node {
	return userNode(m.Kind(), m.Avatar, m.UserID, viewer, Content{Text: m.Text})
}

// System messages never reverse, whoever is viewing.
func renderSystemText(m model.SystemTextMessage, _ ViewerID) Node {
	kind := m.Kind()
	return Node{
		Source:         kind.Source,
		ContainerClass: containerClass(kind.Source, false),
		ContentClass:   contentClass(kind),
		Content:        Content{Text: m.Text, Paragraph: true},
	}
}

// Unsupported is the node for any message no registered renderer accepts.
// It reads nothing from the message.
func Unsupported() Node {
	return Node{
		ContainerClass: "message --unknown",
		Fallback:       true,
		Content:        Content{Text: UnsupportedText, Paragraph: true},
	}
}
