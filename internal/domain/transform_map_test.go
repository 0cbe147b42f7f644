package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

func TestDeriveCopySuffix(t *testing.T) {
	tests := []struct {
		name   string
		source m.ScreensetID
		target m.ScreensetID
		want   string
	}{
		{"target extends source", "chat", "chatCopy", "Copy"},
		{"versioned copy", "demo", "demoV2", "V2"},
		{"same id", "chat", "chat", ""},
		{"unrelated target", "chat", "billing", "Billing"},
		{"source extends target", "chatCopy", "chat", "Chat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveCopySuffix(tt.source, tt.target))
		})
	}
}

func TestBuildTransformationMap_Chat(t *testing.T) {
	ids := []m.IDConstant{
		{Name: "CHAT_SCREENSET_ID", Value: "chat"},
		{Name: "CHAT_THREADS_DOMAIN", Value: "chat/threads"},
		{Name: "HOME_SCREEN_ID", Value: "helloworld"},
		{Name: "SHARED_ICON", Value: "icon-message"},
		{Name: "chat_lower_prefix", Value: "x"},
	}

	got := BuildTransformationMap("chat", "chatCopy", ids)

	want := []m.IDTransformation{
		{OriginalConstName: "CHAT_SCREENSET_ID", NewConstName: "CHAT_COPY_SCREENSET_ID", OriginalValue: "chat", NewValue: "chatCopy"},
		{OriginalConstName: "CHAT_THREADS_DOMAIN", NewConstName: "CHAT_COPY_THREADS_DOMAIN", OriginalValue: "chat/threads", NewValue: "chatCopy/threads"},
		{OriginalConstName: "HOME_SCREEN_ID", NewConstName: "HOME_SCREEN_ID", OriginalValue: "helloworld", NewValue: "helloworldCopy"},
		{OriginalConstName: "SHARED_ICON", NewConstName: "SHARED_ICON", OriginalValue: "icon-message", NewValue: "icon-message"},
		{OriginalConstName: "chat_lower_prefix", NewConstName: "CHAT_COPY_lower_prefix", OriginalValue: "x", NewValue: "x"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("BuildTransformationMap() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTransformationMap_ScreenIDUsesCopySuffix(t *testing.T) {
	got := BuildTransformationMap("demo", "demoV2", []m.IDConstant{{Name: "HOME_SCREEN_ID", Value: "helloworld"}})

	require.Len(t, got, 1)
	assert.Equal(t, "helloworldV2", got[0].NewValue)
	assert.Equal(t, "HOME_SCREEN_ID", got[0].NewConstName)
}

func TestBuildTransformationMap_UnrelatedTarget(t *testing.T) {
	got := BuildTransformationMap("chat", "billing", []m.IDConstant{
		{Name: "CHAT_SCREENSET_ID", Value: "chat"},
		{Name: "INBOX_SCREEN_ID", Value: "inbox"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "BILLING_SCREENSET_ID", got[0].NewConstName)
	assert.Equal(t, "billing", got[0].NewValue)
	assert.Equal(t, "inboxBilling", got[1].NewValue)
}

func TestBuildTransformationMap_IdentityWhenTargetEqualsSource(t *testing.T) {
	ids := []m.IDConstant{
		{Name: "CHAT_SCREENSET_ID", Value: "chat"},
		{Name: "CHAT_THREADS_DOMAIN", Value: "chat/threads"},
		{Name: "HOME_SCREEN_ID", Value: "helloworld"},
		{Name: "OTHER", Value: "other"},
	}

	for _, tr := range BuildTransformationMap("chat", "chat", ids) {
		assert.False(t, tr.NameChanged(), tr.OriginalConstName)
		assert.False(t, tr.ValueChanged(), tr.OriginalValue)
	}
}

func TestBuildTransformationMap_PreservesOrderAndLength(t *testing.T) {
	ids := ExtractIDs("export const B = 'b';\nexport const A = 'a';\nexport const C = 'c';")

	got := BuildTransformationMap("chat", "chatCopy", ids)

	require.Len(t, got, 3)
	assert.Equal(t, "B", got[0].OriginalConstName)
	assert.Equal(t, "A", got[1].OriginalConstName)
	assert.Equal(t, "C", got[2].OriginalConstName)
}

func TestBuildTransformationMap_Empty(t *testing.T) {
	got := BuildTransformationMap("chat", "chatCopy", nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
