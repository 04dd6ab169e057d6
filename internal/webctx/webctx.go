package webctx

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	maxInteractiveElements = 15
	maxForms               = 5
)

// ConfigFor returns the site configuration for a URL. Unknown hosts and
// unparseable URLs get DefaultConfig.
func ConfigFor(rawURL string) SiteConfig {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return DefaultConfig
	}

	hostname := strings.TrimPrefix(parsed.Hostname(), "www.")
	if hostname == "" {
		return DefaultConfig
	}

	for domain, cfg := range siteConfigs {
		if strings.Contains(hostname, domain) {
			return cfg
		}
	}

	return DefaultConfig
}

// ExtractPage reads page context out of raw HTML. Unparseable input
// degrades to an empty context, never an error.
func ExtractPage(html, pageURL string) PageContext {
	ctx := PageContext{URL: pageURL}
	if parsed, err := url.Parse(pageURL); err == nil {
		ctx.Domain = parsed.Hostname()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ctx
	}

	ctx.Title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(`button, [role="button"], input[type="submit"], a[href]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			text, _ = s.Attr("aria-label")
		}
		if text == "" {
			text, _ = s.Attr("value")
		}
		if text != "" && len(text) < 50 {
			ctx.InteractiveElements = append(ctx.InteractiveElements, text)
		}
		return len(ctx.InteractiveElements) < maxInteractiveElements
	})

	doc.Find("form").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		form := Form{}
		form.Action, _ = s.Attr("action")
		s.Find("input, select, textarea").Each(func(_ int, inp *goquery.Selection) {
			name, _ := inp.Attr("name")
			if name == "" {
				name, _ = inp.Attr("id")
			}
			if name == "" {
				name, _ = inp.Attr("placeholder")
			}
			if name != "" {
				form.Fields = append(form.Fields, name)
			}
		})
		if len(form.Fields) > 0 {
			ctx.Forms = append(ctx.Forms, form)
		}
		return len(ctx.Forms) < maxForms
	})

	step := doc.Find(`.step-active, .current-step, [aria-current="step"]`).First()
	ctx.CurrentStep = strings.TrimSpace(step.Text())

	return ctx
}

// BuildPrompt assembles a context-aware system prompt for a free-form
// assistant turn on the current page.
func BuildPrompt(query, pageURL, html, intent string, slots map[string]string) string {
	cfg := ConfigFor(pageURL)

	var page PageContext
	if html != "" {
		page = ExtractPage(html, pageURL)
	} else {
		page = PageContext{URL: pageURL}
		if parsed, err := url.Parse(pageURL); err == nil {
			page.Domain = parsed.Hostname()
		}
	}

	divider := strings.Repeat("=", 50)

	var b strings.Builder
	b.WriteString(cfg.SystemPrompt)
	b.WriteString("\n\n" + divider + "\n")
	b.WriteString("CURRENT PAGE CONTEXT:\n")
	fmt.Fprintf(&b, "- URL: %s\n", pageURL)
	fmt.Fprintf(&b, "- Website: %s\n", cfg.Name)
	fmt.Fprintf(&b, "- Page Title: %s\n", page.Title)

	if len(page.InteractiveElements) > 0 {
		limit := len(page.InteractiveElements)
		if limit > 10 {
			limit = 10
		}
		fmt.Fprintf(&b, "- Available Actions: %s\n", strings.Join(page.InteractiveElements[:limit], ", "))
	}

	if len(page.Forms) > 0 {
		var summaries []string
		for i, form := range page.Forms {
			if i >= 3 {
				break
			}
			fields := form.Fields
			if len(fields) > 5 {
				fields = fields[:5]
			}
			summaries = append(summaries, "Form with fields: "+strings.Join(fields, ", "))
		}
		fmt.Fprintf(&b, "- Forms: %s\n", strings.Join(summaries, "; "))
	}

	if page.CurrentStep != "" {
		fmt.Fprintf(&b, "- Current Step: %s\n", page.CurrentStep)
	}

	b.WriteString("\n" + divider + "\n")
	b.WriteString("WEBSITE CAPABILITIES:\n")
	for _, capability := range cfg.Capabilities {
		fmt.Fprintf(&b, "- %s\n", capability)
	}

	b.WriteString("\nFORM FIELD SELECTORS (for automation):\n")
	b.WriteString(marshalIndent(cfg.FormMappings))
	b.WriteString("\n")

	if intent != "" {
		fmt.Fprintf(&b, "\nDETECTED INTENT: %s\n", intent)
	}
	if len(slots) > 0 {
		fmt.Fprintf(&b, "FILLED SLOTS: %s\n", marshal(slots))
	}

	b.WriteString("\n" + divider + "\n")
	fmt.Fprintf(&b, "USER REQUEST: %q\n\n", query)
	b.WriteString(`RESPOND WITH:
1. Clear understanding of what the user wants
2. Step-by-step guidance specific to this website
3. Any form fields to fill (with CSS selectors from above)
4. Confirmation before taking any action

If returning action commands, use this JSON format:
[{"action": "fill", "selector": "...", "value": "..."},
 {"action": "click", "selector": "..."}]`)

	return b.String()
}

// ActionPrompt builds the prompt that asks the model for a JSON array of
// browser automation steps.
func ActionPrompt(intent, subIntent string, slots map[string]string, pageURL string) string {
	cfg := ConfigFor(pageURL)

	return fmt.Sprintf(`Generate browser automation commands for the following action.

WEBSITE: %s (%s)
INTENT: %s - %s
DATA TO FILL: %s

AVAILABLE SELECTORS:
%s

Generate a JSON array of actions to perform in order:
[
  {"action": "fill", "selector": "<css_selector>", "value": "<value>"},
  {"action": "click", "selector": "<css_selector>"},
  {"action": "wait", "seconds": <number>},
  {"action": "scroll", "direction": "down|up"}
]

Return ONLY valid JSON array, no explanation.`,
		cfg.Name, pageURL, intent, subIntent, marshal(slots), marshalIndent(cfg.FormMappings))
}

func marshal(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func marshalIndent(v any) string {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(raw)
}
