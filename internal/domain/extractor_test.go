package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

func TestExtractIDs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []m.IDConstant
	}{
		{
			name:    "empty input",
			content: "",
			want:    []m.IDConstant{},
		},
		{
			name:    "screenset and screen ids",
			content: "export const CHAT_SCREENSET_ID = 'chat';\nexport const HOME_SCREEN_ID = 'helloworld';",
			want: []m.IDConstant{
				{Name: "CHAT_SCREENSET_ID", Value: "chat"},
				{Name: "HOME_SCREEN_ID", Value: "helloworld"},
			},
		},
		{
			name:    "double quotes and extra spacing",
			content: `export  const   CHAT_THREADS_DOMAIN =  "chat/threads" ;`,
			want: []m.IDConstant{
				{Name: "CHAT_THREADS_DOMAIN", Value: "chat/threads"},
			},
		},
		{
			name: "malformed lines are skipped",
			content: `/** ids */
export const CHAT_SCREENSET_ID = 'chat';
export const BROKEN = 'missing-semicolon'
const PRIVATE_ID = 'private';
export let MUTABLE_ID = 'mutable';
export const NUMBER_ID = 42;
export const MIXED_QUOTES = 'oops";
export const CHAT_EVENTS = "chat/events";
`,
			want: []m.IDConstant{
				{Name: "CHAT_SCREENSET_ID", Value: "chat"},
				{Name: "CHAT_EVENTS", Value: "chat/events"},
			},
		},
		{
			name:    "empty string value",
			content: "export const EMPTY_ID = '';",
			want:    []m.IDConstant{{Name: "EMPTY_ID", Value: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractIDs(tt.content)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ExtractIDs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
