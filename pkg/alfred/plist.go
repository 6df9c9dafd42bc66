package alfred

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ArgumentType controls how a Script Filter treats its argument.
type ArgumentType int

const (
	// ArgumentRequired means the filter only runs with an argument.
	ArgumentRequired ArgumentType = 0
	// ArgumentOptional runs with or without an argument. Required for
	// external trigger support, hence the default.
	ArgumentOptional ArgumentType = 1
	// ArgumentNone means no argument is accepted.
	ArgumentNone ArgumentType = 2
)

// Object is a workflow canvas object that can render itself as a plist
// <dict> fragment.
type Object interface {
	UID() string
	PlistObject() string
}

// ScriptFilter is a keyword-triggered input object running a script.
type ScriptFilter struct {
	ObjectUID            string
	Keyword              string
	Title                string
	Subtitle             string
	RunningSubtext       string
	Script               string
	ArgumentType         ArgumentType
	WithSpace            bool
	AlfredFiltersResults bool
	QueueDelayImmediate  bool
}

// NewScriptFilter returns a Script Filter with a fresh UID and the
// defaults a launcher-backed filter wants: optional argument, immediate
// queueing, filtering left to the script.
func NewScriptFilter(keyword string) *ScriptFilter {
	return &ScriptFilter{
		ObjectUID:           uuid.NewString(),
		Keyword:             keyword,
		RunningSubtext:      "Loading...",
		ArgumentType:        ArgumentOptional,
		QueueDelayImmediate: true,
	}
}

// UID implements Object.
func (s *ScriptFilter) UID() string { return s.ObjectUID }

// PlistObject renders the Script Filter as a plist dict.
func (s *ScriptFilter) PlistObject() string {
	return fmt.Sprintf(`<dict>
	<key>config</key>
	<dict>
		<key>alfredfiltersresults</key>
		<%s/>
		<key>alfredfiltersresultsmatchmode</key>
		<integer>2</integer>
		<key>argumenttreatemptyqueryasnil</key>
		<false/>
		<key>argumenttrimmode</key>
		<integer>0</integer>
		<key>argumenttype</key>
		<integer>%d</integer>
		<key>escaping</key>
		<integer>102</integer>
		<key>keyword</key>
		<string>%s</string>
		<key>queuedelaycustom</key>
		<integer>1</integer>
		<key>queuedelayimmediatelyinitially</key>
		<%s/>
		<key>queuedelaymode</key>
		<integer>0</integer>
		<key>queuemode</key>
		<integer>1</integer>
		<key>runningsubtext</key>
		<string>%s</string>
		<key>script</key>
		<string>%s</string>
		<key>scriptargtype</key>
		<integer>1</integer>
		<key>scriptfile</key>
		<string></string>
		<key>subtext</key>
		<string>%s</string>
		<key>title</key>
		<string>%s</string>
		<key>type</key>
		<integer>0</integer>
		<key>withspace</key>
		<%s/>
	</dict>
	<key>type</key>
	<string>alfred.workflow.input.scriptfilter</string>
	<key>uid</key>
	<string>%s</string>
	<key>version</key>
	<integer>3</integer>
</dict>`,
		plistBool(s.AlfredFiltersResults),
		s.ArgumentType,
		xmlEscape(s.Keyword),
		plistBool(s.QueueDelayImmediate),
		xmlEscape(s.RunningSubtext),
		xmlEscape(s.Script),
		xmlEscape(s.Subtitle),
		xmlEscape(s.Title),
		plistBool(s.WithSpace),
		s.ObjectUID,
	)
}

// ExternalTrigger lets other workflows or URLs invoke this workflow.
type ExternalTrigger struct {
	ObjectUID       string
	TriggerID       string
	AvailableViaURL bool
}

// NewExternalTrigger returns an external trigger with a fresh UID.
func NewExternalTrigger(triggerID string) *ExternalTrigger {
	return &ExternalTrigger{ObjectUID: uuid.NewString(), TriggerID: triggerID}
}

// UID implements Object.
func (t *ExternalTrigger) UID() string { return t.ObjectUID }

// PlistObject renders the trigger as a plist dict.
func (t *ExternalTrigger) PlistObject() string {
	return fmt.Sprintf(`<dict>
	<key>config</key>
	<dict>
		<key>availableviaurlhandler</key>
		<%s/>
		<key>triggerid</key>
		<string>%s</string>
	</dict>
	<key>type</key>
	<string>alfred.workflow.trigger.external</string>
	<key>uid</key>
	<string>%s</string>
	<key>version</key>
	<integer>1</integer>
</dict>`,
		plistBool(t.AvailableViaURL),
		xmlEscape(t.TriggerID),
		t.ObjectUID,
	)
}

// OpenFileAction opens the incoming argument as a file, optionally with
// a specific application.
type OpenFileAction struct {
	ObjectUID string
	OpenWith  string // Application bundle id, empty for the default app
}

// NewOpenFileAction returns an open-file action with a fresh UID.
func NewOpenFileAction() *OpenFileAction {
	return &OpenFileAction{ObjectUID: uuid.NewString()}
}

// UID implements Object.
func (a *OpenFileAction) UID() string { return a.ObjectUID }

// PlistObject renders the action as a plist dict.
func (a *OpenFileAction) PlistObject() string {
	return fmt.Sprintf(`<dict>
	<key>config</key>
	<dict>
		<key>openwith</key>
		<string>%s</string>
		<key>sourcefile</key>
		<string>{query}</string>
	</dict>
	<key>type</key>
	<string>alfred.workflow.action.openfile</string>
	<key>uid</key>
	<string>%s</string>
	<key>version</key>
	<integer>3</integer>
</dict>`,
		xmlEscape(a.OpenWith),
		a.ObjectUID,
	)
}

// Connection wires one canvas object to another.
type Connection struct {
	SourceUID string
	DestUID   string
	Modifiers int // 0 for none, 1048576 for cmd
}

// ModifierCmd is the Alfred modifier mask for the cmd key.
const ModifierCmd = 1048576

// UIPosition places an object on the workflow canvas.
type UIPosition struct {
	UID string
	X   int
	Y   int
}

// InfoPlist assembles a complete workflow info.plist from objects,
// connections, and canvas positions.
type InfoPlist struct {
	BundleID    string
	Name        string
	CreatedBy   string
	Description string
	WebAddress  string
	Objects     []Object
	Connections []Connection
	Positions   []UIPosition
}

// Render returns the full info.plist XML document.
func (p *InfoPlist) Render() string {
	var b strings.Builder

	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">` + "\n")
	b.WriteString("<plist version=\"1.0\">\n<dict>\n")

	fmt.Fprintf(&b, "\t<key>bundleid</key>\n\t<string>%s</string>\n", xmlEscape(p.BundleID))

	b.WriteString("\t<key>connections</key>\n\t<dict>\n")
	bySource := make(map[string][]Connection)
	var order []string
	for _, c := range p.Connections {
		if _, ok := bySource[c.SourceUID]; !ok {
			order = append(order, c.SourceUID)
		}
		bySource[c.SourceUID] = append(bySource[c.SourceUID], c)
	}
	for _, src := range order {
		fmt.Fprintf(&b, "\t\t<key>%s</key>\n\t\t<array>\n", src)
		for _, c := range bySource[src] {
			fmt.Fprintf(&b, `			<dict>
				<key>destinationuid</key>
				<string>%s</string>
				<key>modifiers</key>
				<integer>%d</integer>
				<key>modifiersubtext</key>
				<string></string>
				<key>vitoclose</key>
				<false/>
			</dict>
`, c.DestUID, c.Modifiers)
		}
		b.WriteString("\t\t</array>\n")
	}
	b.WriteString("\t</dict>\n")

	fmt.Fprintf(&b, "\t<key>createdby</key>\n\t<string>%s</string>\n", xmlEscape(p.CreatedBy))
	fmt.Fprintf(&b, "\t<key>description</key>\n\t<string>%s</string>\n", xmlEscape(p.Description))
	fmt.Fprintf(&b, "\t<key>name</key>\n\t<string>%s</string>\n", xmlEscape(p.Name))

	b.WriteString("\t<key>objects</key>\n\t<array>\n")
	for _, obj := range p.Objects {
		b.WriteString(indent(obj.PlistObject(), 2))
		b.WriteString("\n")
	}
	b.WriteString("\t</array>\n")

	b.WriteString("\t<key>uidata</key>\n\t<dict>\n")
	for _, pos := range p.Positions {
		fmt.Fprintf(&b, `		<key>%s</key>
		<dict>
			<key>xpos</key>
			<integer>%d</integer>
			<key>ypos</key>
			<integer>%d</integer>
		</dict>
`, pos.UID, pos.X, pos.Y)
	}
	b.WriteString("\t</dict>\n")

	fmt.Fprintf(&b, "\t<key>webaddress</key>\n\t<string>%s</string>\n", xmlEscape(p.WebAddress))

	b.WriteString("</dict>\n</plist>\n")
	return b.String()
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}

func plistBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func indent(s string, tabs int) string {
	prefix := strings.Repeat("\t", tabs)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
