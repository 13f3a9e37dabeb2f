package theme

// Settings is the raw, mutable input from which a Config is built.
// Loaders fill it from defaults, files and the environment; New validates it.
type Settings struct {
	Logo               LogoSettings       `mapstructure:"logo" yaml:"logo" json:"logo"`
	Project            LinkSettings       `mapstructure:"project" yaml:"project" json:"project"`
	Chat               LinkSettings       `mapstructure:"chat" yaml:"chat" json:"chat"`
	DocsRepositoryBase string             `mapstructure:"docsRepositoryBase" yaml:"docsRepositoryBase" json:"docsRepositoryBase"`
	Footer             FooterSettings     `mapstructure:"footer" yaml:"footer" json:"footer"`
	Head               HeadSettings       `mapstructure:"head" yaml:"head" json:"head"`
	PrimaryHue         int                `mapstructure:"primaryHue" yaml:"primaryHue" json:"primaryHue"`
	Sidebar            SidebarSettings    `mapstructure:"sidebar" yaml:"sidebar" json:"sidebar"`
	Navigation         NavigationSettings `mapstructure:"navigation" yaml:"navigation" json:"navigation"`
	TOC                TOCSettings        `mapstructure:"toc" yaml:"toc" json:"toc"`
	Search             SearchSettings     `mapstructure:"search" yaml:"search" json:"search"`
	EditLink           EditLinkSettings   `mapstructure:"editLink" yaml:"editLink" json:"editLink"`
	Feedback           FeedbackSettings   `mapstructure:"feedback" yaml:"feedback" json:"feedback"`
	TitleTemplate      string             `mapstructure:"titleTemplate" yaml:"titleTemplate" json:"titleTemplate"`
}

// LogoSettings describes the text logo and its style hints.
type LogoSettings struct {
	Text       string `mapstructure:"text" yaml:"text" json:"text"`
	FontWeight int    `mapstructure:"fontWeight" yaml:"fontWeight" json:"fontWeight"`
	FontSize   string `mapstructure:"fontSize" yaml:"fontSize" json:"fontSize"`
}

type LinkSettings struct {
	Link string `mapstructure:"link" yaml:"link" json:"link"`
}

// FooterSettings holds the parts of the footer line. The year is not
// configurable; it is supplied on every render.
type FooterSettings struct {
	Holder    string `mapstructure:"holder" yaml:"holder" json:"holder"`
	Link      string `mapstructure:"link" yaml:"link" json:"link"`
	BuiltWith string `mapstructure:"builtWith" yaml:"builtWith" json:"builtWith"`
}

// HeadSettings carries the site-wide SEO and social-card values.
type HeadSettings struct {
	BaseURL     string `mapstructure:"baseURL" yaml:"baseURL" json:"baseURL"`
	Title       string `mapstructure:"title" yaml:"title" json:"title"`
	Description string `mapstructure:"description" yaml:"description" json:"description"`
	SiteName    string `mapstructure:"siteName" yaml:"siteName" json:"siteName"`
	TwitterCard string `mapstructure:"twitterCard" yaml:"twitterCard" json:"twitterCard"`
	TwitterSite string `mapstructure:"twitterSite" yaml:"twitterSite" json:"twitterSite"`
	Favicon     string `mapstructure:"favicon" yaml:"favicon" json:"favicon"`
	Image       string `mapstructure:"image" yaml:"image" json:"image"`
	Locale      string `mapstructure:"locale" yaml:"locale" json:"locale"`
}

type SidebarSettings struct {
	DefaultMenuCollapseLevel int  `mapstructure:"defaultMenuCollapseLevel" yaml:"defaultMenuCollapseLevel" json:"defaultMenuCollapseLevel"`
	ToggleButton             bool `mapstructure:"toggleButton" yaml:"toggleButton" json:"toggleButton"`
}

type NavigationSettings struct {
	Prev bool `mapstructure:"prev" yaml:"prev" json:"prev"`
	Next bool `mapstructure:"next" yaml:"next" json:"next"`
}

type TOCSettings struct {
	Float bool   `mapstructure:"float" yaml:"float" json:"float"`
	Title string `mapstructure:"title" yaml:"title" json:"title"`
}

type SearchSettings struct {
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder" json:"placeholder"`
}

type EditLinkSettings struct {
	Text string `mapstructure:"text" yaml:"text" json:"text"`
}

// FeedbackSettings configures the "give us feedback" prompt. Labels may be
// written as a single string or a list in configuration files.
type FeedbackSettings struct {
	Content string   `mapstructure:"content" yaml:"content" json:"content"`
	Labels  []string `mapstructure:"labels" yaml:"labels" json:"labels"`
}

// DefaultSettings returns the settings of the Marcus AI documentation site.
func DefaultSettings() Settings {
	return Settings{
		Logo: LogoSettings{
			Text:       "Marcus AI",
			FontWeight: 700,
			FontSize:   "1.2rem",
		},
		Project:            LinkSettings{Link: "https://github.com/lwgray/marcus"},
		Chat:               LinkSettings{Link: "https://discord.gg/your-discord"},
		DocsRepositoryBase: "https://github.com/lwgray/marcus/tree/main/docs",
		Footer: FooterSettings{
			Holder:    "Marcus AI",
			Link:      "https://marcus-ai.dev",
			BuiltWith: "Built with Next.js and Nextra.",
		},
		Head: HeadSettings{
			BaseURL:     "https://marcus-ai.dev",
			Title:       "Marcus AI - Intelligent Agent Coordination",
			Description: "Enable AI agents to collaborate autonomously on software development projects with context, intelligence, and transparency.",
			TwitterCard: "summary_large_image",
			TwitterSite: "@yourtwitterhandle",
			Favicon:     "/favicon.ico",
		},
		PrimaryHue: 162,
		Sidebar: SidebarSettings{
			DefaultMenuCollapseLevel: 1,
			ToggleButton:             true,
		},
		Navigation:    NavigationSettings{Prev: true, Next: true},
		TOC:           TOCSettings{Float: true, Title: "On This Page"},
		Search:        SearchSettings{Placeholder: "Search documentation..."},
		EditLink:      EditLinkSettings{Text: "Edit this page on GitHub"},
		Feedback:      FeedbackSettings{Content: "Questions? Give us feedback →", Labels: []string{"feedback"}},
		TitleTemplate: "%s – Marcus AI",
	}
}

func (s Settings) clone() Settings {
	out := s
	if s.Feedback.Labels != nil {
		out.Feedback.Labels = append([]string(nil), s.Feedback.Labels...)
	}
	return out
}
