package model

import "encoding/json"

// Source is the origin of a message
type Source string

// Type is the content kind of a message
type Type string

const (
	SourceUser   Source = "user"
	SourceSystem Source = "system"

	TypeImage Type = "image"
	TypeText  Type = "text"
)

// Kind is the (source, type) discriminator pair identifying a variant
type Kind struct {
	Source Source
	Type   Type
}

// String returns "<source>-<type>"
func (k Kind) String() string {
	return string(k.Source) + "-" + string(k.Type)
}

var (
	KindUserImage  = Kind{Source: SourceUser, Type: TypeImage}
	KindUserText   = Kind{Source: SourceUser, Type: TypeText}
	KindSystemText = Kind{Source: SourceSystem, Type: TypeText}
)

// Message is one of the variants below
type Message interface {
	MessageID() int
	Kind() Kind
}

// UserImageMessage is an image posted by a user
type UserImageMessage struct {
	ID       int    `json:"id"`
	Avatar   string `json:"avatar"`
	UserID   int    `json:"userId"`
	ImageURL string `json:"imageUrl"`
}

func (m UserImageMessage) MessageID() int { return m.ID }
func (m UserImageMessage) Kind() Kind { return KindUserImage }

func (m UserImageMessage) MarshalJSON() ([]byte, error) {
	type alias UserImageMessage
	return json.Marshal(struct {
		Source Source `json:"source"`
		Type   Type   `json:"type"`
		alias
	}{SourceUser, TypeImage, alias(m)})
}

// UserTextMessage is a text posted by a user
type UserTextMessage struct {
	ID     int    `json:"id"`
	Avatar string `json:"avatar"`
	UserID int    `json:"userId"`
	Text   string `json:"text"`
}

func (m UserTextMessage) MessageID() int { return m.ID }
func (m UserTextMessage) Kind() Kind { return KindUserText }

func (m UserTextMessage) MarshalJSON() ([]byte, error) {
	type alias UserTextMessage
	return json.Marshal(struct {
		Source Source `json:"source"`
		Type   Type   `json:"type"`
		alias
	}{SourceUser, TypeText, alias(m)})
}

// SystemTextMessage is a notice from the system. It has no author.
type SystemTextMessage struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

func (m SystemTextMessage) MessageID() int { return m.ID }
func (m SystemTextMessage) Kind() Kind { return KindSystemText }

func (m SystemTextMessage) MarshalJSON() ([]byte, error) {
	type alias SystemTextMessage
	return json.Marshal(struct {
		Source Source `json:"source"`
		Type   Type   `json:"type"`
		alias
	}{SourceSystem, TypeText, alias(m)})
}

// UnknownMessage holds a message whose discriminators match no variant,
// including system/image. Raw keeps the original payload when it was decoded.
type UnknownMessage struct {
	ID     int
	Source Source
	Type   Type
	Raw    json.RawMessage
}

func (m UnknownMessage) MessageID() int { return m.ID }
func (m UnknownMessage) Kind() Kind { return Kind{Source: m.Source, Type: m.Type} }

func (m UnknownMessage) MarshalJSON() ([]byte, error) {
	if len(m.Raw) > 0 {
		return m.Raw, nil
	}
	return json.Marshal(struct {
		ID     int    `json:"id"`
		Source Source `json:"source"`
		Type   Type   `json:"type"`
	}{m.ID, m.Source, m.Type})
}

// Record is the flat shape shared by every variant, as stored in a row or
// sent over the wire. Fields not used by a variant are ignored.
type Record struct {
	ID       int
	Source   Source
	Type     Type
	Avatar   string
	UserID   int
	Text     string
	ImageURL string
}

// Kind returns the record's discriminator pair
func (r Record) Kind() Kind {
	return Kind{Source: r.Source, Type: r.Type}
}

// Message builds the variant named by the record's kind
func (r Record) Message() Message {
	switch r.Kind() {
	case KindUserImage:
		return UserImageMessage{ID: r.ID, Avatar: r.Avatar, UserID: r.UserID, ImageURL: r.ImageURL}
	case KindUserText:
		return UserTextMessage{ID: r.ID, Avatar: r.Avatar, UserID: r.UserID, Text: r.Text}
	case KindSystemText:
		return SystemTextMessage{ID: r.ID, Text: r.Text}
	default:
		return UnknownMessage{ID: r.ID, Source: r.Source, Type: r.Type}
	}
}
