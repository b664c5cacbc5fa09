package source

import (
	"context"

	"chatrender/internal/model"
)

const (
	mockAvatar   = "https://s.cn.bing.net/th?id=OJ.Fp4ZQH55LwfXFA&w=75&h=75&c=8&pid=MSNJVFeeds"
	mockImageURL = "https://tse1-mm.cn.bing.net/th?id=OIP.9YSUJy-HumgTQz8HsVtauwHaE5&w=247&h=160&c=8&rs=1&qlt=90&pid=3.1&rm=2"
	mockUserText = "user message user message user message user message user message user message user message user message user message user message "
)

// Mock serves a fixed sample conversation. The last entry has a type
// outside the known set.
type Mock struct{}

// Messages returns the sample conversation in display order
func (Mock) Messages(_ context.Context) ([]model.Message, error) {
	return []model.Message{
		model.UserImageMessage{ID: 0, Avatar: mockAvatar, UserID: 0, ImageURL: mockImageURL},
		model.UserTextMessage{ID: 1, Avatar: mockAvatar, UserID: 1, Text: mockUserText},
		model.SystemTextMessage{ID: 2, Text: "system message"},
		model.SystemTextMessage{ID: 3, Text: "system message"},
		model.SystemTextMessage{ID: 4, Text: "system message"},
		model.UserImageMessage{ID: 5, Avatar: mockAvatar, UserID: 0, ImageURL: mockImageURL},
		model.UserTextMessage{ID: 6, Avatar: mockAvatar, UserID: 1, Text: mockUserText},
		model.UnknownMessage{ID: 7, Source: model.SourceUser, Type: "unknown"},
	}, nil
}
