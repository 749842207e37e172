package style

import (
	"strconv"
	"strings"
)

// Role identifies one customizable color slot of the style.
type Role int

const (
	RoleText Role = iota
	RoleTextDisabled
	RoleWindowBg
	RoleChildBg
	RolePopupBg
	RoleBorder
	RoleBorderShadow
	RoleFrameBg
	RoleFrameBgHovered
	RoleFrameBgActive
	RoleTitleBg
	RoleTitleBgActive
	RoleTitleBgCollapsed
	RoleMenuBarBg
	RoleScrollbarBg
	RoleScrollbarGrab
	RoleScrollbarGrabHovered
	RoleScrollbarGrabActive
	RoleCheckMark
	RoleSliderGrab
	RoleSliderGrabActive
	RoleButton
	RoleButtonHovered
	RoleButtonActive
	RoleHeader
	RoleHeaderHovered
	RoleHeaderActive
	RoleSeparator
	RoleSeparatorHovered
	RoleSeparatorActive
	RoleResizeGrip
	RoleResizeGripHovered
	RoleResizeGripActive
	RoleTab
	RoleTabHovered
	RoleTabActive
	RoleTabUnfocused
	RoleTabUnfocusedActive
	RoleDockingPreview
	RoleDockingEmptyBg
	RolePlotLines
	RolePlotLinesHovered
	RolePlotHistogram
	RolePlotHistogramHovered
	RoleTableHeaderBg
	RoleTableBorderStrong
	RoleTableBorderLight
	RoleTableRowBg
	RoleTableRowBgAlt
	RoleTextSelectedBg
	RoleDragDropTarget
	RoleNavHighlight
	RoleNavWindowingHighlight
	RoleNavWindowingDimBg
	RoleModalWindowDimBg

	// RoleCount is the number of color roles.
	RoleCount
)

var roleNames = [RoleCount]string{
	RoleText:                  "Text",
	RoleTextDisabled:          "TextDisabled",
	RoleWindowBg:              "WindowBg",
	RoleChildBg:               "ChildBg",
	RolePopupBg:               "PopupBg",
	RoleBorder:                "Border",
	RoleBorderShadow:          "BorderShadow",
	RoleFrameBg:               "FrameBg",
	RoleFrameBgHovered:        "FrameBgHovered",
	RoleFrameBgActive:         "FrameBgActive",
	RoleTitleBg:               "TitleBg",
	RoleTitleBgActive:         "TitleBgActive",
	RoleTitleBgCollapsed:      "TitleBgCollapsed",
	RoleMenuBarBg:             "MenuBarBg",
	RoleScrollbarBg:           "ScrollbarBg",
	RoleScrollbarGrab:         "ScrollbarGrab",
	RoleScrollbarGrabHovered:  "ScrollbarGrabHovered",
	RoleScrollbarGrabActive:   "ScrollbarGrabActive",
	RoleCheckMark:             "CheckMark",
	RoleSliderGrab:            "SliderGrab",
	RoleSliderGrabActive:      "SliderGrabActive",
	RoleButton:                "Button",
	RoleButtonHovered:         "ButtonHovered",
	RoleButtonActive:          "ButtonActive",
	RoleHeader:                "Header",
	RoleHeaderHovered:         "HeaderHovered",
	RoleHeaderActive:          "HeaderActive",
	RoleSeparator:             "Separator",
	RoleSeparatorHovered:      "SeparatorHovered",
	RoleSeparatorActive:       "SeparatorActive",
	RoleResizeGrip:            "ResizeGrip",
	RoleResizeGripHovered:     "ResizeGripHovered",
	RoleResizeGripActive:      "ResizeGripActive",
	RoleTab:                   "Tab",
	RoleTabHovered:            "TabHovered",
	RoleTabActive:             "TabActive",
	RoleTabUnfocused:          "TabUnfocused",
	RoleTabUnfocusedActive:    "TabUnfocusedActive",
	RoleDockingPreview:        "DockingPreview",
	RoleDockingEmptyBg:        "DockingEmptyBg",
	RolePlotLines:             "PlotLines",
	RolePlotLinesHovered:      "PlotLinesHovered",
	RolePlotHistogram:         "PlotHistogram",
	RolePlotHistogramHovered:  "PlotHistogramHovered",
	RoleTableHeaderBg:         "TableHeaderBg",
	RoleTableBorderStrong:     "TableBorderStrong",
	RoleTableBorderLight:      "TableBorderLight",
	RoleTableRowBg:            "TableRowBg",
	RoleTableRowBgAlt:         "TableRowBgAlt",
	RoleTextSelectedBg:        "TextSelectedBg",
	RoleDragDropTarget:        "DragDropTarget",
	RoleNavHighlight:          "NavHighlight",
	RoleNavWindowingHighlight: "NavWindowingHighlight",
	RoleNavWindowingDimBg:     "NavWindowingDimBg",
	RoleModalWindowDimBg:      "ModalWindowDimBg",
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool { return r >= 0 && r < RoleCount }

func (r Role) String() string {
	if !r.Valid() {
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
	return roleNames[r]
}

// ParseRole looks up a role by name, ignoring case.
func ParseRole(name string) (Role, bool) {
	for r, n := range roleNames {
		if strings.EqualFold(n, name) {
			return Role(r), true
		}
	}
	return 0, false
}

// Roles returns every role in declaration order.
func Roles() []Role {
	out := make([]Role, RoleCount)
	for i := range out {
		out[i] = Role(i)
	}
	return out
}
