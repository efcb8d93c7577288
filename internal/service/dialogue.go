package service

import (
	"fmt"
	"strings"

	"core/internal/model"
	"core/internal/rules"
)

// Keyword sets for the intent cascade. Matching is case-insensitive and
// punctuation-insensitive on word boundaries; multi-word entries match as
// phrases.
var (
	greetingKeywords = []string{
		"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
	}

	thanksKeywords = []string{
		"thank", "thanks", "thank you", "tnx", "thx", "bye", "goodbye",
	}

	irrelevantKeywords = []string{
		"cricket", "football", "movie", "actor", "actress", "politics", "song",
		"story", "math", "science", "chemistry", "physics", "coding", "python",
		"java", "food", "recipe", "love", "relationship", "weather", "news",
	}

	dangerKeywords = []string{"dangerous", "harmful", "bad"}

	dustbinKeywords = []string{
		"dustbin", "trash", "garbage", "normal bin", "normal dustbin",
	}

	disposeKeywords = []string{
		"how", "dispose", "throw", "recycle", "get rid", "what should i do",
	}

	safetyKeywords = []string{
		"safe", "harmful", "dangerous", "risk", "toxic",
	}

	looselyRelatedKeywords = []string{
		"waste", "e-waste", "electronic", "battery", "mobile", "laptop", "tv",
		"television", "printer", "microwave", "washing machine", "pcb",
	}
)

// intentRule is one entry in the ordered intent cascade: a predicate over
// the lower-cased message plus conversation context, and the responder
// that produces the reply when the predicate matches first.
type intentRule struct {
	name    string
	match   func(msg string, convCtx model.ConversationContext) bool
	respond func(msg string, convCtx model.ConversationContext) string
}

// DialogueEngine produces replies for free-text user messages by walking
// an ordered cascade of intent rules, first match wins. The final rule
// always matches, so Reply cannot fail. The engine is stateless: the
// caller supplies the last detected item via ConversationContext on each
// turn.
type DialogueEngine struct {
	store   *rules.Store
	cascade []intentRule
}

// NewDialogueEngine creates a new dialogue engine over a rule store
func NewDialogueEngine(store *rules.Store) *DialogueEngine {
	e := &DialogueEngine{store: store}
	e.cascade = []intentRule{
		{
			name: "greeting",
			match: func(msg string, _ model.ConversationContext) bool {
				return containsKeyword(msg, greetingKeywords)
			},
			respond: e.respondGreeting,
		},
		{
			name: "thanks",
			match: func(msg string, _ model.ConversationContext) bool {
				return containsKeyword(msg, thanksKeywords)
			},
			respond: e.respondThanks,
		},
		{
			name: "self_description",
			match: func(msg string, _ model.ConversationContext) bool {
				return strings.Contains(msg, "who are you") ||
					strings.Contains(msg, "what can you do") ||
					strings.Contains(msg, "who r u")
			},
			respond: e.respondSelfDescription,
		},
		{
			// Off-topic check takes priority over context-based answering so
			// a sarcastic or unrelated message never gets disposal steps.
			name: "off_topic",
			match: func(msg string, _ model.ConversationContext) bool {
				return containsKeyword(msg, irrelevantKeywords)
			},
			respond: e.respondOffTopic,
		},
		{
			name: "what_is_ewaste",
			match: func(msg string, _ model.ConversationContext) bool {
				return strings.Contains(msg, "what is e-waste") ||
					(containsKeyword(msg, []string{"what"}) && strings.Contains(msg, "e waste"))
			},
			respond: e.respondWhatIsEwaste,
		},
		{
			name: "why_dangerous",
			match: func(msg string, _ model.ConversationContext) bool {
				hasEwaste := containsKeyword(msg, []string{"e-waste"})
				return (containsKeyword(msg, []string{"why"}) && hasEwaste) ||
					(hasEwaste && containsKeyword(msg, dangerKeywords))
			},
			respond: e.respondWhyDangerous,
		},
		{
			name: "not_normal_trash",
			match: func(msg string, _ model.ConversationContext) bool {
				return containsKeyword(msg, dustbinKeywords)
			},
			respond: e.respondNotNormalTrash,
		},
		{
			name: "examples",
			match: func(msg string, _ model.ConversationContext) bool {
				return strings.Contains(msg, "examples of e-waste") ||
					(containsKeyword(msg, []string{"what"}) && strings.Contains(msg, "e-waste items")) ||
					strings.Contains(msg, "types of e-waste")
			},
			respond: e.respondExamples,
		},
		{
			name: "where_to_recycle",
			match: func(msg string, _ model.ConversationContext) bool {
				return strings.Contains(msg, "recycling centre") ||
					strings.Contains(msg, "recycle center") ||
					strings.Contains(msg, "where to give") ||
					strings.Contains(msg, "where can i give")
			},
			respond: e.respondWhereToRecycle,
		},
		{
			// Only reachable when the caller remembered a detected item and
			// the rule store still knows it.
			name: "last_item",
			match: func(_ string, convCtx model.ConversationContext) bool {
				return convCtx.LastClass != "" && e.store.Has(convCtx.LastClass)
			},
			respond: e.respondLastItem,
		},
		{
			name: "loosely_related",
			match: func(msg string, _ model.ConversationContext) bool {
				return containsKeyword(msg, looselyRelatedKeywords)
			},
			respond: e.respondLooselyRelated,
		},
		{
			name: "fallback",
			match: func(_ string, _ model.ConversationContext) bool {
				return true
			},
			respond: e.respondFallback,
		},
	}
	return e
}

// Reply produces a single reply for one user message. The caller layer
// rejects empty messages; Reply assumes trimmed non-empty text.
func (e *DialogueEngine) Reply(message string, convCtx model.ConversationContext) string {
	reply, _ := e.ReplyWithIntent(message, convCtx)
	return reply
}

// ReplyWithIntent produces a reply plus the name of the matched intent
// rule, for activity logging
func (e *DialogueEngine) ReplyWithIntent(message string, convCtx model.ConversationContext) (string, string) {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, rule := range e.cascade {
		if rule.match(msg, convCtx) {
			return rule.respond(msg, convCtx), rule.name
		}
	}
	// Unreachable: the terminal rule always matches
	return e.respondFallback(msg, convCtx), "fallback"
}

func (e *DialogueEngine) respondGreeting(_ string, convCtx model.ConversationContext) string {
	if convCtx.LastName != "" {
		return fmt.Sprintf("Hello! 😊 I recently detected <b>%s</b>. You can ask me how to dispose it safely or any e-waste question.", convCtx.LastName)
	}
	return "Hello! 😊 I am your e-waste assistant. You can upload an image of an electronic item and ask me how to dispose it safely."
}

func (e *DialogueEngine) respondThanks(_ string, _ model.ConversationContext) string {
	return "You're welcome! ♻️ If you have more questions about e-waste or another item, just ask."
}

func (e *DialogueEngine) respondSelfDescription(_ string, _ model.ConversationContext) string {
	return "I am an e-waste assistant chatbot. I can:<br>" +
		"- Identify many electronic items from an image (like battery, mobile, printer, TV, etc.)<br>" +
		"- Tell you how to dispose them safely<br>" +
		"- Explain why e-waste is dangerous<br>" +
		"- Help you find nearby recycling centres using Google Maps."
}

func (e *DialogueEngine) respondOffTopic(_ string, _ model.ConversationContext) string {
	return "Sorry, I'm just an e-waste chatbot 😅.<br>" +
		"I can help you with identifying electronics and teaching you how to dispose them safely.<br><br>" +
		"For other questions, you can contact my elder brother <b>ChatGPT</b> — he knows everything! 🤖✨"
}

func (e *DialogueEngine) respondWhatIsEwaste(_ string, _ model.ConversationContext) string {
	return "E-waste (electronic waste) is any discarded electrical or electronic item, such as mobiles, laptops, TVs, " +
		"batteries, chargers, printers, and so on. These items contain metals, plastics and chemicals that can " +
		"pollute soil and water and can harm human health if they are dumped or burnt instead of being recycled properly."
}

func (e *DialogueEngine) respondWhyDangerous(_ string, _ model.ConversationContext) string {
	return "E-waste is dangerous because it often contains hazardous substances like lead, mercury, cadmium and brominated " +
		"flame retardants. If e-waste is thrown in normal dustbins, dumped or burnt, these substances can leak into the " +
		"air, soil and water. This can cause health problems (like nerve damage and cancers) and long-term environmental damage."
}

func (e *DialogueEngine) respondNotNormalTrash(_ string, _ model.ConversationContext) string {
	return "Electronic items should not be thrown in the normal dustbin. They contain metals, chemicals and sometimes batteries " +
		"that can leak or catch fire. Instead, always hand over e-waste to an authorised e-waste collection centre or recycler " +
		"so that useful materials can be recovered safely."
}

func (e *DialogueEngine) respondExamples(_ string, _ model.ConversationContext) string {
	return "Common examples of e-waste include:<br>" +
		"- Mobile phones, tablets, laptops, computers<br>" +
		"- Keyboards, mouse, chargers, cables, earphones<br>" +
		"- Televisions, printers, scanners, media players<br>" +
		"- Microwaves, washing machines and other appliances with electronics<br>" +
		"- Batteries and circuit boards (PCBs)<br>" +
		"All of these should be sent to e-waste recyclers instead of normal dustbins."
}

func (e *DialogueEngine) respondWhereToRecycle(_ string, _ model.ConversationContext) string {
	return "You can use the 'Find nearest recycling centre' link I provide after analyzing an image. " +
		"It opens Google Maps with nearby e-waste recycling or collection centres. " +
		"You can also search in Google Maps for 'e-waste recycling centre' or 'battery recycling' in your city."
}

// respondLastItem answers questions about the remembered item through a
// nested cascade: disposal steps, safety, identity, then a short summary.
func (e *DialogueEngine) respondLastItem(msg string, convCtx model.ConversationContext) string {
	rule, ok := e.store.Get(convCtx.LastClass)
	if !ok {
		// The match predicate checked the store, but degrade anyway rather
		// than panic if the remembered class vanished.
		return "It should be treated as e-waste and handed over to an authorised recycler."
	}

	name := convCtx.LastName
	if name == "" {
		name = rule.DisplayName
		if name == "" {
			name = convCtx.LastClass
		}
	}

	if containsKeyword(msg, disposeKeywords) {
		var sb strings.Builder
		fmt.Fprintf(&sb, "For <b>%s</b>, you should dispose it as follows:<br><ul>", name)
		for _, step := range rule.DisposalSteps {
			fmt.Fprintf(&sb, "<li>%s</li>", step)
		}
		sb.WriteString("</ul>")
		if rule.Hazards != "" {
			fmt.Fprintf(&sb, "<br><b>Hazards:</b> %s", rule.Hazards)
		}
		if rule.Tips != "" {
			fmt.Fprintf(&sb, "<br><b>Tips:</b> %s", rule.Tips)
		}
		return sb.String()
	}

	if containsKeyword(msg, safetyKeywords) {
		var sb strings.Builder
		fmt.Fprintf(&sb, "<b>%s</b> is considered e-waste. ", name)
		if rule.Hazards != "" {
			fmt.Fprintf(&sb, "Main hazards: %s ", rule.Hazards)
		}
		sb.WriteString("So please do not throw it in normal dustbin. Use an authorised e-waste centre.")
		return sb.String()
	}

	if strings.Contains(msg, "what is this") || strings.Contains(msg, "what item") || strings.Contains(msg, "what product") {
		category := rule.Category
		if category == "" {
			category = "E-waste"
		}
		return fmt.Sprintf("This item was detected as <b>%s</b>, which belongs to the category: %s.", name, category)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are asking about <b>%s</b>. ", name)
	if len(rule.DisposalSteps) > 0 {
		sb.WriteString("Here is a short summary of how to dispose it:<br><ul>")
		steps := rule.DisposalSteps
		if len(steps) > 3 {
			steps = steps[:3]
		}
		for _, step := range steps {
			fmt.Fprintf(&sb, "<li>%s</li>", step)
		}
		sb.WriteString("</ul>")
	} else {
		sb.WriteString("It should be treated as e-waste and handed over to an authorised recycler.")
	}
	return sb.String()
}

func (e *DialogueEngine) respondLooselyRelated(_ string, _ model.ConversationContext) string {
	return "I may not fully understand the exact question, but I can help with e-waste disposal. " +
		"Try asking things like:<br>" +
		"- How to dispose this item?<br>" +
		"- Is it safe to throw this in the dustbin?<br>" +
		"- Why is e-waste dangerous?<br>" +
		"Also, you can upload an image if you want me to detect a specific product."
}

func (e *DialogueEngine) respondFallback(_ string, _ model.ConversationContext) string {
	return "Sorry, I am mainly designed to talk about e-waste and electronic items. " +
		"Please upload an image of an electronic product (like a battery, mobile, printer, TV, etc.) " +
		"and then ask me how to dispose it safely. " +
		"For other kinds of questions, you can ask my elder brother <b>ChatGPT</b> 😊."
}

// containsKeyword reports whether the message contains any of the
// keywords as a whole word or phrase. Punctuation counts as a word
// boundary, so "hi" matches "hi there!" but not "this".
func containsKeyword(msg string, keywords []string) bool {
	padded := " " + normalizeWords(msg) + " "
	for _, keyword := range keywords {
		if strings.Contains(padded, " "+normalizeWords(keyword)+" ") {
			return true
		}
	}
	return false
}

// normalizeWords lower-cases text and collapses punctuation into single
// spaces so word-boundary checks are cheap substring checks
func normalizeWords(text string) string {
	var sb strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		isWord := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isWord {
			sb.WriteRune(r)
			lastSpace = false
		} else if !lastSpace {
			sb.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(sb.String())
}
