// Package alfred emits Script Filter JSON and manages workflow
// installation for the Alfred launcher.
//
// The JSON field names follow Alfred's Script Filter schema exactly;
// they are the wire contract with the launcher, not a choice.
package alfred

import "fmt"

// Item is a single row in Alfred's result list.
type Item struct {
	UID          string `json:"uid,omitempty"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle,omitempty"`
	Arg          string `json:"arg,omitempty"`
	Icon         *Icon  `json:"icon,omitempty"`
	Valid        *bool  `json:"valid,omitempty"`
	Autocomplete string `json:"autocomplete,omitempty"`
	Match        string `json:"match,omitempty"`
	Type         string `json:"type,omitempty"`
	Mods         *Mods  `json:"mods,omitempty"`
	Text         *Text  `json:"text,omitempty"`
	QuicklookURL string `json:"quicklookurl,omitempty"`
}

// Icon for an Item. Type selects how Alfred interprets Path: empty for
// an image file, "fileicon" for the icon of a file at that path,
// "filetype" for a UTI.
type Icon struct {
	Type string `json:"type,omitempty"`
	Path string `json:"path"`
}

// Mods holds per-modifier-key overrides for an Item.
type Mods struct {
	Cmd   *ModItem `json:"cmd,omitempty"`
	Alt   *ModItem `json:"alt,omitempty"`
	Ctrl  *ModItem `json:"ctrl,omitempty"`
	Shift *ModItem `json:"shift,omitempty"`
}

// ModItem overrides an Item when its modifier key is held.
type ModItem struct {
	Valid    *bool  `json:"valid,omitempty"`
	Arg      string `json:"arg,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

// Text supplies the copy (cmd-C) and large type (cmd-L) values.
type Text struct {
	Copy      string `json:"copy,omitempty"`
	Largetype string `json:"largetype,omitempty"`
}

// PathIcon returns an icon loaded from an image file.
func PathIcon(path string) *Icon {
	return &Icon{Path: path}
}

// FileIcon returns the icon of the file at path.
func FileIcon(path string) *Icon {
	return &Icon{Type: "fileicon", Path: path}
}

// FiletypeIcon returns the generic icon for a UTI such as "public.folder".
func FiletypeIcon(uti string) *Icon {
	return &Icon{Type: "filetype", Path: uti}
}

// Alert returns an unactionable item used to surface a message in the
// result list instead of failing the whole query.
func Alert(title, subtitle string) Item {
	valid := false
	return Item{
		Title:    title,
		Subtitle: subtitle,
		Valid:    &valid,
		Icon:     PathIcon(alertIconPath),
	}
}

const (
	alertIconPath  = "/System/Library/CoreServices/CoreTypes.bundle/Contents/Resources/AlertStopIcon.icns"
	folderIconPath = "/System/Library/CoreServices/CoreTypes.bundle/Contents/Resources/GenericFolderIcon.icns"
)

// NoResults returns the placeholder item shown when a scan found nothing.
func NoResults(root string) Item {
	valid := false
	return Item{
		Title:    "No git repositories found",
		Subtitle: fmt.Sprintf("in %s", root),
		Valid:    &valid,
		Icon:     PathIcon(folderIconPath),
	}
}

// CmdMod sets the action taken when the item is selected with cmd held.
func (i *Item) CmdMod(arg, subtitle string) {
	if i.Mods == nil {
		i.Mods = &Mods{}
	}
	valid := true
	i.Mods.Cmd = &ModItem{Valid: &valid, Arg: arg, Subtitle: subtitle}
}

// AltMod sets the action taken when the item is selected with alt held.
func (i *Item) AltMod(arg, subtitle string) {
	if i.Mods == nil {
		i.Mods = &Mods{}
	}
	valid := true
	i.Mods.Alt = &ModItem{Valid: &valid, Arg: arg, Subtitle: subtitle}
}
