package service

import (
	"strings"
	"testing"

	"core/internal/model"
)

func TestDialogueEngine_Greeting(t *testing.T) {
	engine := NewDialogueEngine(testStore())

	tests := []struct {
		name     string
		message  string
		convCtx  model.ConversationContext
		contains string
		excludes string
	}{
		{
			name:     "Generic greeting without context",
			message:  "Hello there",
			contains: "e-waste assistant",
		},
		{
			name:     "Personalized greeting with last item",
			message:  "hi!",
			convCtx:  model.ConversationContext{LastClass: "mobile", LastName: "Smartphone"},
			contains: "Smartphone",
		},
		{
			name:     "No greeting for hi inside another word",
			message:  "how do I throw away this item?",
			excludes: "Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := engine.Reply(tt.message, tt.convCtx)
			if tt.contains != "" && !strings.Contains(reply, tt.contains) {
				t.Errorf("Expected reply to contain %q, got: %s", tt.contains, reply)
			}
			if tt.excludes != "" && strings.Contains(reply, tt.excludes) {
				t.Errorf("Expected reply to omit %q, got: %s", tt.excludes, reply)
			}
		})
	}
}

func TestDialogueEngine_IntentOrder(t *testing.T) {
	engine := NewDialogueEngine(testStore())

	tests := []struct {
		name       string
		message    string
		convCtx    model.ConversationContext
		wantIntent string
	}{
		{
			name:       "Thanks",
			message:    "thanks a lot",
			wantIntent: "thanks",
		},
		{
			name:       "Self description",
			message:    "so who are you exactly?",
			wantIntent: "self_description",
		},
		{
			name:       "Off-topic beats context branch",
			message:    "how do I dispose of my movie collection",
			convCtx:    model.ConversationContext{LastClass: "battery"},
			wantIntent: "off_topic",
		},
		{
			name:       "What is e-waste",
			message:    "what is e-waste?",
			wantIntent: "what_is_ewaste",
		},
		{
			name:       "Hazard rationale",
			message:    "why is e-waste dangerous",
			wantIntent: "why_dangerous",
		},
		{
			name:       "Normal trash query",
			message:    "can I put it in the garbage",
			wantIntent: "not_normal_trash",
		},
		{
			name:       "Examples list",
			message:    "give me examples of e-waste please",
			wantIntent: "examples",
		},
		{
			name:       "Where to recycle",
			message:    "where can i give my old electronics",
			wantIntent: "where_to_recycle",
		},
		{
			name:       "Context branch with remembered item",
			message:    "how do I throw away this item?",
			convCtx:    model.ConversationContext{LastClass: "battery"},
			wantIntent: "last_item",
		},
		{
			name:       "Unknown last class falls through to loosely related",
			message:    "something about my laptop",
			convCtx:    model.ConversationContext{LastClass: "hoverboard"},
			wantIntent: "loosely_related",
		},
		{
			name:       "Terminal fallback",
			message:    "qwerty asdf",
			wantIntent: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, intent := engine.ReplyWithIntent(tt.message, tt.convCtx)
			if intent != tt.wantIntent {
				t.Errorf("Expected intent %q, got %q (reply: %s)", tt.wantIntent, intent, reply)
			}
			if reply == "" {
				t.Error("Expected non-empty reply")
			}
		})
	}
}

func TestDialogueEngine_LastItemDisposal(t *testing.T) {
	engine := NewDialogueEngine(testStore())
	convCtx := model.ConversationContext{LastClass: "battery"}

	reply := engine.Reply("How do I throw away this item?", convCtx)

	for _, step := range []string{"<li>Do not incinerate</li>", "<li>Take to collection point</li>"} {
		if !strings.Contains(reply, step) {
			t.Errorf("Expected reply to list step %q, got: %s", step, reply)
		}
	}
	if !strings.Contains(reply, "Contains lead") {
		t.Errorf("Expected reply to contain the hazards sentence, got: %s", reply)
	}
	if !strings.Contains(reply, "Tape the terminals") {
		t.Errorf("Expected reply to contain the tips sentence, got: %s", reply)
	}
}

func TestDialogueEngine_LastItemSafety(t *testing.T) {
	engine := NewDialogueEngine(testStore())
	convCtx := model.ConversationContext{LastClass: "battery", LastName: "Battery"}

	reply := engine.Reply("is it toxic?", convCtx)

	if !strings.Contains(reply, "<b>Battery</b> is considered e-waste") {
		t.Errorf("Expected hazard-focused answer, got: %s", reply)
	}
	if !strings.Contains(reply, "Main hazards: Contains lead") {
		t.Errorf("Expected hazards in safety answer, got: %s", reply)
	}
}

func TestDialogueEngine_LastItemIdentity(t *testing.T) {
	engine := NewDialogueEngine(testStore())
	convCtx := model.ConversationContext{LastClass: "mobile"}

	reply := engine.Reply("what is this thing", convCtx)

	if !strings.Contains(reply, "<b>Mobile Phone</b>") {
		t.Errorf("Expected display name in identity answer, got: %s", reply)
	}
	if !strings.Contains(reply, "category: E-waste") {
		t.Errorf("Expected category in identity answer, got: %s", reply)
	}
}

func TestDialogueEngine_LastItemSummaryCapsSteps(t *testing.T) {
	engine := NewDialogueEngine(testStore())
	convCtx := model.ConversationContext{LastClass: "mobile"}

	// No dispose/safety/identity keyword -> generic summary with at most
	// the first three steps
	reply := engine.Reply("tell me about the phone you detected", convCtx)

	if !strings.Contains(reply, "<li>Remove SIM card</li>") {
		t.Errorf("Expected first step in summary, got: %s", reply)
	}
	if strings.Contains(reply, "Keep the battery in") {
		t.Errorf("Expected summary to cap at three steps, got: %s", reply)
	}
}

func TestDialogueEngine_UnknownLastClassDoesNotPanic(t *testing.T) {
	engine := NewDialogueEngine(testStore())
	convCtx := model.ConversationContext{LastClass: "jetpack", LastName: "Jetpack"}

	reply := engine.Reply("qwerty asdf", convCtx)

	if reply == "" {
		t.Error("Expected fallback reply for unknown remembered class")
	}
	if strings.Contains(reply, "Jetpack") {
		t.Errorf("Expected no item-specific content for unknown class, got: %s", reply)
	}
}

func TestContainsKeyword(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		keywords []string
		want     bool
	}{
		{
			name:     "Whole word match",
			message:  "hi there",
			keywords: []string{"hi"},
			want:     true,
		},
		{
			name:     "No match inside another word",
			message:  "how do i throw away this item",
			keywords: []string{"hi"},
			want:     false,
		},
		{
			name:     "Punctuation is a boundary",
			message:  "thanks!",
			keywords: []string{"thanks"},
			want:     true,
		},
		{
			name:     "Hyphenated keyword",
			message:  "why is e-waste bad",
			keywords: []string{"e-waste"},
			want:     true,
		},
		{
			name:     "Multi-word phrase",
			message:  "is the normal bin fine",
			keywords: []string{"normal bin"},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := containsKeyword(tt.message, tt.keywords); got != tt.want {
				t.Errorf("containsKeyword(%q, %v) = %v, want %v", tt.message, tt.keywords, got, tt.want)
			}
		})
	}
}
