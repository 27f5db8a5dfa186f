package content

// SettingItem is one row of the settings screen. Page, when set, is a
// markdown document opened on selection.
type SettingItem struct {
	Title    string
	Subtitle string
	Page     string
}

type SettingSection struct {
	Title string
	Items []SettingItem
}

func SettingsSections() []SettingSection {
	return []SettingSection{
		{Title: "Account", Items: []SettingItem{
			{Title: "Security"},
			{Title: "Privacy"},
			{Title: "Notifications"},
		}},
		{Title: "Support", Items: []SettingItem{
			{Title: "Help Center", Page: helpPage},
			{Title: "About", Page: aboutPage},
			{Title: "Terms of Service", Page: termsPage},
		}},
		{Title: "Cache & Cellular", Items: []SettingItem{
			{Title: "Saved", Subtitle: "250 MB used"},
			{Title: "Data Usage"},
		}},
	}
}

const helpPage = `# Help Center

- Use **1-5** to switch tabs.
- On your profile press **e** to edit it and **s** for settings.
- **esc** goes back.
`

const aboutPage = `# About

A demo photo and video feed. All content is generated in memory and
disappears when you quit.
`

const termsPage = `# Terms of Service

This is a prototype. Accounts are a fixed demo list and passwords are
stored in plain text. Do not reuse a real password.
`
