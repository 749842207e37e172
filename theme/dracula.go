package theme

import "imstyles/style"

// Dracula is a dark theme with a blue-grey base and purple accents.
// Published by Trippasch in https://github.com/ocornut/imgui/issues/707.
// It leaves every role and metric it does not list untouched.
var Dracula = &Theme{
	name:     "dracula",
	credit:   "Trippasch, https://github.com/ocornut/imgui/issues/707",
	fontSize: DefaultFontSize,
	colors: map[style.Role]style.Color{
		style.RoleWindowBg:  {0.10, 0.10, 0.13, 1.00},
		style.RoleMenuBarBg: {0.16, 0.16, 0.21, 1.00},

		// border
		style.RoleBorder:       {0.44, 0.37, 0.61, 0.29},
		style.RoleBorderShadow: {0.00, 0.00, 0.00, 0.24},

		// text
		style.RoleText:         {1.00, 1.00, 1.00, 1.00},
		style.RoleTextDisabled: {0.50, 0.50, 0.50, 1.00},

		// headers
		style.RoleHeader:        {0.13, 0.13, 0.17, 1.00},
		style.RoleHeaderHovered: {0.19, 0.20, 0.25, 1.00},
		style.RoleHeaderActive:  {0.16, 0.16, 0.21, 1.00},

		// buttons
		style.RoleButton:        {0.13, 0.13, 0.17, 1.00},
		style.RoleButtonHovered: {0.19, 0.20, 0.25, 1.00},
		style.RoleButtonActive:  {0.16, 0.16, 0.21, 1.00},
		style.RoleCheckMark:     {0.74, 0.58, 0.98, 1.00},

		style.RolePopupBg: {0.10, 0.10, 0.13, 0.92},

		// slider
		style.RoleSliderGrab:       {0.44, 0.37, 0.61, 0.54},
		style.RoleSliderGrabActive: {0.74, 0.58, 0.98, 0.54},

		// frame
		style.RoleFrameBg:        {0.13, 0.13, 0.17, 1.00},
		style.RoleFrameBgHovered: {0.19, 0.20, 0.25, 1.00},
		style.RoleFrameBgActive:  {0.16, 0.16, 0.21, 1.00},

		// tabs
		style.RoleTab:                {0.16, 0.16, 0.21, 1.00},
		style.RoleTabHovered:         {0.24, 0.24, 0.32, 1.00},
		style.RoleTabActive:          {0.20, 0.22, 0.27, 1.00},
		style.RoleTabUnfocused:       {0.16, 0.16, 0.21, 1.00},
		style.RoleTabUnfocusedActive: {0.16, 0.16, 0.21, 1.00},

		// title
		style.RoleTitleBg:          {0.16, 0.16, 0.21, 1.00},
		style.RoleTitleBgActive:    {0.16, 0.16, 0.21, 1.00},
		style.RoleTitleBgCollapsed: {0.16, 0.16, 0.21, 1.00},

		// scrollbar
		style.RoleScrollbarBg:          {0.10, 0.10, 0.13, 1.00},
		style.RoleScrollbarGrab:        {0.16, 0.16, 0.21, 1.00},
		style.RoleScrollbarGrabHovered: {0.19, 0.20, 0.25, 1.00},
		style.RoleScrollbarGrabActive:  {0.24, 0.24, 0.32, 1.00},

		// separator
		style.RoleSeparator:        {0.44, 0.37, 0.61, 1.00},
		style.RoleSeparatorHovered: {0.74, 0.58, 0.98, 1.00},
		style.RoleSeparatorActive:  {0.84, 0.58, 1.00, 1.00},

		// resize grip
		style.RoleResizeGrip:        {0.44, 0.37, 0.61, 0.29},
		style.RoleResizeGripHovered: {0.74, 0.58, 0.98, 0.29},
		style.RoleResizeGripActive:  {0.84, 0.58, 1.00, 0.29},

		style.RoleDockingPreview: {0.44, 0.37, 0.61, 1.00},
	},
	metrics: map[style.Metric]style.MetricValue{
		style.MetricTabRounding:       style.Scalar(4),
		style.MetricScrollbarRounding: style.Scalar(9),
		style.MetricWindowRounding:    style.Scalar(7),
		style.MetricGrabRounding:      style.Scalar(3),
		style.MetricFrameRounding:     style.Scalar(3),
		style.MetricPopupRounding:     style.Scalar(4),
		style.MetricChildRounding:     style.Scalar(4),
	},
}
