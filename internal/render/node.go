package render

import "chatrender/internal/model"

// ViewerID identifies who is looking at the list. User messages by anyone
// else are rendered reversed.
type ViewerID int

// UnsupportedText is shown in place of messages no renderer accepts
const UnsupportedText = "不支持的类型"

// Content is what sits inside a message container. Exactly one of Text or
// Image is set.
type Content struct {
	Text      string `json:"text,omitempty"`
	Image     string `json:"image,omitempty"`
	Paragraph bool   `json:"paragraph,omitempty"`
}

// Node describes how one message should be presented
type Node struct {
	Source         model.Source `json:"source,omitempty"`
	ContainerClass string       `json:"containerClass"`
	ContentClass   string       `json:"contentClass,omitempty"`
	Avatar         string       `json:"avatar,omitempty"`
	Reversed       bool         `json:"reversed"`
	Fallback       bool         `json:"fallback,omitempty"`
	Content        Content      `json:"content"`
}

// Item is a rendered list entry keyed by its message id
type Item struct {
	Key int `json:"key"`
	Node
}

func containerClass(source model.Source, reversed bool) string {
	class := "message --" + string(source)
	if reversed {
		class += " --reverse"
	}
	return class
}

func contentClass(kind model.Kind) string {
	return "message__content --" + kind.String()
}
