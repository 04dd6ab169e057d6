package webctx

// SiteConfig describes what the assistant can do on a known website
type SiteConfig struct {
	Domain       string
	Name         string
	Capabilities []string
	SystemPrompt string
	FormMappings map[string]string
}

// PageContext is what could be read off the current page
type PageContext struct {
	URL                 string
	Title               string
	Domain              string
	InteractiveElements []string
	Forms               []Form
	CurrentStep         string
}

// Form is a summarized HTML form
type Form struct {
	Action string
	Fields []string
}
