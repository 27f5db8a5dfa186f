package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/photofeed/internal/content"
)

type editField struct {
	key     string
	label   string
	private bool
}

var editFields = []editField{
	{key: "name", label: "Name"},
	{key: "username", label: "Username"},
	{key: "website", label: "Website"},
	{key: "bio", label: "Bio"},
	{key: "email", label: "Email", private: true},
	{key: "phone", label: "Phone", private: true},
	{key: "gender", label: "Gender", private: true},
}

const bioField = 3

// editForm edits a copy of the profile. Nothing is written back until the
// caller applies it on Done.
type editForm struct {
	inputs []textinput.Model
	bio    textarea.Model
	focus  int
}

func newEditForm(p content.Profile) editForm {
	values := map[string]string{
		"name":     p.Name,
		"username": p.Username,
		"website":  p.Website,
		"email":    p.Email,
		"phone":    p.Phone,
		"gender":   p.Gender,
	}
	inputs := make([]textinput.Model, len(editFields))
	for i, f := range editFields {
		if i == bioField {
			continue
		}
		in := textinput.New()
		in.Prompt = padLabel(f.label)
		in.Placeholder = f.label
		in.SetValue(values[f.key])
		inputs[i] = in
	}
	bio := textarea.New()
	bio.ShowLineNumbers = false
	bio.Placeholder = "Bio"
	bio.SetHeight(3)
	bio.SetWidth(40)
	bio.SetValue(p.Bio)

	f := editForm{inputs: inputs, bio: bio}
	f.setFocus(0)
	return f
}

func padLabel(label string) string {
	return label + strings.Repeat(" ", max(1, 10-len(label)))
}

func (f *editForm) setFocus(i int) tea.Cmd {
	n := len(editFields)
	f.focus = (i%n + n) % n
	for j := range f.inputs {
		if j != bioField {
			f.inputs[j].Blur()
		}
	}
	f.bio.Blur()
	if f.focus == bioField {
		return f.bio.Focus()
	}
	return f.inputs[f.focus].Focus()
}

func (f *editForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.focus == bioField {
		f.bio, cmd = f.bio.Update(msg)
		return cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// apply returns p with the form's values.
func (f *editForm) apply(p content.Profile) content.Profile {
	p.Name = f.inputs[0].Value()
	p.Username = f.inputs[1].Value()
	p.Website = f.inputs[2].Value()
	p.Bio = f.bio.Value()
	p.Email = f.inputs[4].Value()
	p.Phone = f.inputs[5].Value()
	p.Gender = f.inputs[6].Value()
	return p
}

func (f *editForm) view(p content.Profile) string {
	lines := []string{
		titleStyle.Render("Edit Profile"),
		mutedStyle.Render(p.Image + "  (Change Profile Photo)"),
		"",
	}
	for i, fld := range editFields {
		if fld.private && !editFields[i-1].private {
			lines = append(lines, "", titleStyle.Render("Private Information"))
		}
		if i == bioField {
			lines = append(lines, padLabel(fld.label), f.bio.View())
			continue
		}
		lines = append(lines, f.inputs[i].View())
	}
	return strings.Join(lines, "\n")
}
