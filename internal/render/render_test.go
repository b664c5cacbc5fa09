package render

import (
	"reflect"
	"strings"
	"testing"

	"chatrender/internal/model"
)

// TestDispatch_UserImage 自分の画像メッセージは反転しない
func TestDispatch_UserImage(t *testing.T) {
	m := model.UserImageMessage{ID: 0, UserID: 0, ImageURL: "X", Avatar: "A"}

	node := Dispatch(m, 0)

	if node.ContainerClass != "message --user" {
		t.Errorf("Expected container 'message --user', got %q", node.ContainerClass)
	}
	if node.ContentClass != "message__content --user-image" {
		t.Errorf("Expected content 'message__content --user-image', got %q", node.ContentClass)
	}
	if node.Content.Image != "X" {
		t.Errorf("Expected image 'X', got %q", node.Content.Image)
	}
	if node.Avatar != "A" {
		t.Errorf("Expected avatar 'A', got %q", node.Avatar)
	}
	if node.Reversed || node.Fallback {
		t.Errorf("Expected non-reversed, non-fallback node, got %+v", node)
	}
}

// TestDispatch_UserTextReversed 他人のテキストは反転する
func TestDispatch_UserTextReversed(t *testing.T) {
	m := model.UserTextMessage{ID: 1, UserID: 1, Text: "hello"}

	node := Dispatch(m, 0)

	if node.ContainerClass != "message --user --reverse" {
		t.Errorf("Expected container 'message --user --reverse', got %q", node.ContainerClass)
	}
	if node.ContentClass != "message__content --user-text" {
		t.Errorf("Expected content 'message__content --user-text', got %q", node.ContentClass)
	}
	if node.Content.Text != "hello" {
		t.Errorf("Expected text 'hello', got %q", node.Content.Text)
	}
	if !node.Reversed {
		t.Error("Expected reversed node")
	}
}

// TestDispatch_SystemText システムメッセージは閲覧者に関係なく反転しない
func TestDispatch_SystemText(t *testing.T) {
	m := model.SystemTextMessage{ID: 2, Text: "sys"}

	for _, viewer := range []ViewerID{0, 1, 42, -1} {
		node := Dispatch(m, viewer)

		if node.ContainerClass != "message --system" {
			t.Errorf("viewer %d: expected container 'message --system', got %q", viewer, node.ContainerClass)
		}
		if node.ContentClass != "message__content --system-text" {
			t.Errorf("viewer %d: expected content class 'message__content --system-text', got %q", viewer, node.ContentClass)
		}
		if node.Content.Text != "sys" || !node.Content.Paragraph {
			t.Errorf("viewer %d: expected paragraph 'sys', got %+v", viewer, node.Content)
		}
		if node.Reversed || node.Avatar != "" {
			t.Errorf("viewer %d: system node should have no avatar or reverse, got %+v", viewer, node)
		}
	}
}

// TestDispatch_Unregistered 未登録の組み合わせはすべてフォールバック
func TestDispatch_Unregistered(t *testing.T) {
	cases := []struct {
		name string
		msg  model.Message
	}{
		{"unknown type", model.UnknownMessage{ID: 7, Source: model.SourceUser, Type: "unknown"}},
		{"system image", model.UnknownMessage{ID: 8, Source: model.SourceSystem, Type: model.TypeImage}},
		{"numeric source", model.UnknownMessage{ID: 9, Source: "42", Type: model.TypeText}},
		{"empty discriminators", model.UnknownMessage{}},
		{"nil message", nil},
		{"nil user image pointer", (*model.UserImageMessage)(nil)},
		{"nil user text pointer", (*model.UserTextMessage)(nil)},
		{"nil system text pointer", (*model.SystemTextMessage)(nil)},
		{"nil unknown pointer", (*model.UnknownMessage)(nil)},
		// 判別子は登録済みでも型が一致しなければ描画しない
		{"registered pair, wrong variant", model.UnknownMessage{ID: 10, Source: model.SourceUser, Type: model.TypeText}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			node := Dispatch(tc.msg, 0)
			if !reflect.DeepEqual(node, Unsupported()) {
				t.Errorf("Expected fallback node, got %+v", node)
			}
			if node.Content.Text != UnsupportedText {
				t.Errorf("Expected %q, got %q", UnsupportedText, node.Content.Text)
			}
		})
	}
}

// TestDispatch_Decoded JSON由来の未知メッセージもフォールバック
func TestDispatch_Decoded(t *testing.T) {
	payloads := []string{
		`{"id":7,"source":"user","type":"unknown","text":"x","avatar":"a","userId":1}`,
		`{"id":3,"source":"system","type":"image","imageUrl":"X"}`,
		`{"source":1,"type":true}`,
		`{"source":null}`,
		`"just a string"`,
		`[1,2,3]`,
		`not json`,
	}

	for _, p := range payloads {
		node := Dispatch(model.Decode([]byte(p)), 0)
		if !node.Fallback {
			t.Errorf("Expected fallback for %s, got %+v", p, node)
		}
	}
}

// TestDispatch_Pointers ポインタでも値と同じレンダラーで描画する
func TestDispatch_Pointers(t *testing.T) {
	cases := []struct {
		value model.Message
		ptr   model.Message
	}{
		{model.UserImageMessage{ID: 0, UserID: 0, ImageURL: "X", Avatar: "A"}, &model.UserImageMessage{ID: 0, UserID: 0, ImageURL: "X", Avatar: "A"}},
		{model.UserTextMessage{ID: 1, UserID: 1, Text: "hello"}, &model.UserTextMessage{ID: 1, UserID: 1, Text: "hello"}},
		{model.SystemTextMessage{ID: 2, Text: "sys"}, &model.SystemTextMessage{ID: 2, Text: "sys"}},
	}

	for _, tc := range cases {
		node := Dispatch(tc.ptr, 0)
		if node.Fallback {
			t.Errorf("%s: pointer should not fall back, got %+v", tc.ptr.Kind(), node)
		}
		if want := Dispatch(tc.value, 0); !reflect.DeepEqual(node, want) {
			t.Errorf("%s: expected %+v, got %+v", tc.ptr.Kind(), want, node)
		}
	}

	// 未知の型はポインタでもフォールバック
	if node := Dispatch(&model.UnknownMessage{ID: 7, Source: model.SourceUser, Type: model.TypeText}, 0); !node.Fallback {
		t.Errorf("Expected fallback for *UnknownMessage, got %+v", node)
	}
}

// TestReversed 反転は userId != viewer のときだけ
func TestReversed(t *testing.T) {
	for _, userID := range []int{0, 1, 5} {
		for _, viewer := range []ViewerID{0, 1, 5} {
			want := ViewerID(userID) != viewer

			img := Dispatch(model.UserImageMessage{UserID: userID}, viewer)
			txt := Dispatch(model.UserTextMessage{UserID: userID}, viewer)

			if img.Reversed != want || txt.Reversed != want {
				t.Errorf("userId=%d viewer=%d: expected reversed=%v, got image=%v text=%v",
					userID, viewer, want, img.Reversed, txt.Reversed)
			}
			if want != strings.HasSuffix(txt.ContainerClass, " --reverse") {
				t.Errorf("userId=%d viewer=%d: container class %q disagrees with reversed=%v",
					userID, viewer, txt.ContainerClass, want)
			}
		}
	}
}

// TestDispatch_Idempotent 同じ入力には同じ出力
func TestDispatch_Idempotent(t *testing.T) {
	msgs := []model.Message{
		model.UserImageMessage{ID: 0, UserID: 3, ImageURL: "X"},
		model.UserTextMessage{ID: 1, UserID: 0, Text: "hi"},
		model.SystemTextMessage{ID: 2, Text: "sys"},
		model.UnknownMessage{ID: 3, Source: "bot"},
	}

	for _, m := range msgs {
		first := Dispatch(m, 0)
		second := Dispatch(m, 0)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Dispatch not idempotent for %+v: %+v vs %+v", m, first, second)
		}
	}
}

// TestRegistry 登録済みの組み合わせは3つだけ
func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	want := []model.Kind{model.KindSystemText, model.KindUserImage, model.KindUserText}
	if got := reg.Kinds(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected kinds %v, got %v", want, got)
	}

	if _, ok := reg.Lookup(model.Kind{Source: model.SourceSystem, Type: model.TypeImage}); ok {
		t.Error("system-image must not be registered")
	}

	for _, kind := range want {
		if _, ok := reg.Lookup(kind); !ok {
			t.Errorf("Expected renderer for %s", kind)
		}
	}
}

// TestRenderer_RejectsOtherVariant 型付きレンダラーは他の型を拒否する
func TestRenderer_RejectsOtherVariant(t *testing.T) {
	fn, ok := Default().Lookup(model.KindUserImage)
	if !ok {
		t.Fatal("Expected user-image renderer")
	}

	if _, ok := fn(model.UserTextMessage{Text: "hi"}, 0); ok {
		t.Error("user-image renderer should reject a UserTextMessage")
	}
	if _, ok := fn(model.UserImageMessage{ImageURL: "X"}, 0); !ok {
		t.Error("user-image renderer should accept a UserImageMessage")
	}
}

// TestRenderList 順序と件数を保つ
func TestRenderList(t *testing.T) {
	msgs := []model.Message{
		model.UserImageMessage{ID: 0, UserID: 0, ImageURL: "X"},
		model.UserTextMessage{ID: 1, UserID: 1, Text: "hello"},
		model.SystemTextMessage{ID: 2, Text: "sys"},
		model.UnknownMessage{ID: 7, Source: model.SourceUser, Type: "unknown"},
		model.SystemTextMessage{ID: 2, Text: "dup id"},
		&model.UserTextMessage{ID: 11, UserID: 0, Text: "ptr"},
	}

	items := RenderList(msgs, 0)

	if len(items) != len(msgs) {
		t.Fatalf("Expected %d items, got %d", len(msgs), len(items))
	}
	for i, m := range msgs {
		if items[i].Key != m.MessageID() {
			t.Errorf("item %d: expected key %d, got %d", i, m.MessageID(), items[i].Key)
		}
		if want := Dispatch(m, 0); !reflect.DeepEqual(items[i].Node, want) {
			t.Errorf("item %d: expected %+v, got %+v", i, want, items[i].Node)
		}
	}
}

// TestRenderList_NilEntries nil や nil ポインタはキー0のフォールバック
func TestRenderList_NilEntries(t *testing.T) {
	msgs := []model.Message{
		model.SystemTextMessage{ID: 2, Text: "sys"},
		nil,
		(*model.UserImageMessage)(nil),
		(*model.SystemTextMessage)(nil),
	}

	items := RenderList(msgs, 0)

	if len(items) != len(msgs) {
		t.Fatalf("Expected %d items, got %d", len(msgs), len(items))
	}
	if items[0].Key != 2 || items[0].Fallback {
		t.Errorf("Unexpected first item: %+v", items[0])
	}
	for i := 1; i < len(items); i++ {
		if items[i].Key != 0 || !reflect.DeepEqual(items[i].Node, Unsupported()) {
			t.Errorf("item %d: expected key 0 fallback, got %+v", i, items[i])
		}
	}
}

// TestRenderList_Empty 空入力は空出力
func TestRenderList_Empty(t *testing.T) {
	items := RenderList(nil, 0)
	if items == nil || len(items) != 0 {
		t.Errorf("Expected empty non-nil list, got %#v", items)
	}
}

// TestListHTML 元のマークアップと同じ構造で出力する
func TestListHTML(t *testing.T) {
	msgs := []model.Message{
		model.UserImageMessage{ID: 0, UserID: 0, ImageURL: "https://example.com/x.png", Avatar: "https://example.com/a.png"},
		model.UserTextMessage{ID: 1, UserID: 1, Text: "<b>hello</b>"},
		model.SystemTextMessage{ID: 2, Text: "sys"},
		model.UnknownMessage{ID: 7, Source: model.SourceUser, Type: "unknown"},
	}

	html, err := ListHTML(msgs, 0)
	if err != nil {
		t.Fatalf("ListHTML failed: %v", err)
	}

	wants := []string{
		`<ul class="message-list">`,
		`<li data-key="0"><div class="message --user"><img class="message__user-avatar" src="https://example.com/a.png" alt=""><div class="message__content --user-image"><img src="https://example.com/x.png" alt=""></div></div></li>`,
		`<div class="message --user --reverse">`,
		`&lt;b&gt;hello&lt;/b&gt;`,
		`<div class="message --system"><div class="message__content --system-text"><p>sys</p></div></div>`,
		`<li data-key="7"><div class="message --unknown"><p>不支持的类型</p></div></li>`,
	}
	for _, want := range wants {
		if !strings.Contains(html, want) {
			t.Errorf("Expected HTML to contain %q, got:\n%s", want, html)
		}
	}

	if strings.Contains(html, "<b>hello</b>") {
		t.Error("Text content must be escaped")
	}
}
