package theme

import "imstyles/style"

// EmbraceTheDarkness is a neutral dark theme with blue highlights and red
// plot and navigation accents. Published by janekb04 in
// https://github.com/ocornut/imgui/issues/707.
var EmbraceTheDarkness = &Theme{
	name:     "embrace-the-darkness",
	credit:   "janekb04, https://github.com/ocornut/imgui/issues/707",
	fontSize: DefaultFontSize,
	colors: map[style.Role]style.Color{
		style.RoleText:                  {1.00, 1.00, 1.00, 1.00},
		style.RoleTextDisabled:          {0.50, 0.50, 0.50, 1.00},
		style.RoleWindowBg:              {0.10, 0.10, 0.10, 1.00},
		style.RoleChildBg:               {0.00, 0.00, 0.00, 0.00},
		style.RolePopupBg:               {0.19, 0.19, 0.19, 0.92},
		style.RoleBorder:                {0.19, 0.19, 0.19, 0.29},
		style.RoleBorderShadow:          {0.00, 0.00, 0.00, 0.24},
		style.RoleFrameBg:               {0.05, 0.05, 0.05, 0.54},
		style.RoleFrameBgHovered:        {0.19, 0.19, 0.19, 0.54},
		style.RoleFrameBgActive:         {0.20, 0.22, 0.23, 1.00},
		style.RoleTitleBg:               {0.00, 0.00, 0.00, 1.00},
		style.RoleTitleBgActive:         {0.06, 0.06, 0.06, 1.00},
		style.RoleTitleBgCollapsed:      {0.00, 0.00, 0.00, 1.00},
		style.RoleMenuBarBg:             {0.14, 0.14, 0.14, 1.00},
		style.RoleScrollbarBg:           {0.05, 0.05, 0.05, 0.54},
		style.RoleScrollbarGrab:         {0.34, 0.34, 0.34, 0.54},
		style.RoleScrollbarGrabHovered:  {0.40, 0.40, 0.40, 0.54},
		style.RoleScrollbarGrabActive:   {0.56, 0.56, 0.56, 0.54},
		style.RoleCheckMark:             {0.33, 0.67, 0.86, 1.00},
		style.RoleSliderGrab:            {0.34, 0.34, 0.34, 0.54},
		style.RoleSliderGrabActive:      {0.56, 0.56, 0.56, 0.54},
		style.RoleButton:                {0.05, 0.05, 0.05, 0.54},
		style.RoleButtonHovered:         {0.19, 0.19, 0.19, 0.54},
		style.RoleButtonActive:          {0.20, 0.22, 0.23, 1.00},
		style.RoleHeader:                {0.00, 0.00, 0.00, 0.52},
		style.RoleHeaderHovered:         {0.00, 0.00, 0.00, 0.36},
		style.RoleHeaderActive:          {0.20, 0.22, 0.23, 0.33},
		style.RoleSeparator:             {0.28, 0.28, 0.28, 0.29},
		style.RoleSeparatorHovered:      {0.44, 0.44, 0.44, 0.29},
		style.RoleSeparatorActive:       {0.40, 0.44, 0.47, 1.00},
		style.RoleResizeGrip:            {0.28, 0.28, 0.28, 0.29},
		style.RoleResizeGripHovered:     {0.44, 0.44, 0.44, 0.29},
		style.RoleResizeGripActive:      {0.40, 0.44, 0.47, 1.00},
		style.RoleTab:                   {0.00, 0.00, 0.00, 0.52},
		style.RoleTabHovered:            {0.14, 0.14, 0.14, 1.00},
		style.RoleTabActive:             {0.20, 0.20, 0.20, 0.36},
		style.RoleTabUnfocused:          {0.00, 0.00, 0.00, 0.52},
		style.RoleTabUnfocusedActive:    {0.14, 0.14, 0.14, 1.00},
		style.RoleDockingPreview:        {0.33, 0.67, 0.86, 1.00},
		style.RoleDockingEmptyBg:        {1.00, 0.00, 0.00, 1.00},
		style.RolePlotLines:             {1.00, 0.00, 0.00, 1.00},
		style.RolePlotLinesHovered:      {1.00, 0.00, 0.00, 1.00},
		style.RolePlotHistogram:         {1.00, 0.00, 0.00, 1.00},
		style.RolePlotHistogramHovered:  {1.00, 0.00, 0.00, 1.00},
		style.RoleTableHeaderBg:         {0.00, 0.00, 0.00, 0.52},
		style.RoleTableBorderStrong:     {0.00, 0.00, 0.00, 0.52},
		style.RoleTableBorderLight:      {0.28, 0.28, 0.28, 0.29},
		style.RoleTableRowBg:            {0.00, 0.00, 0.00, 0.00},
		style.RoleTableRowBgAlt:         {1.00, 1.00, 1.00, 0.06},
		style.RoleTextSelectedBg:        {0.20, 0.22, 0.23, 1.00},
		style.RoleDragDropTarget:        {0.33, 0.67, 0.86, 1.00},
		style.RoleNavHighlight:          {1.00, 0.00, 0.00, 1.00},
		style.RoleNavWindowingHighlight: {1.00, 0.00, 0.00, 0.70},
		style.RoleNavWindowingDimBg:     {1.00, 0.00, 0.00, 0.20},
		style.RoleModalWindowDimBg:      {1.00, 0.00, 0.00, 0.35},
	},
	metrics: map[style.Metric]style.MetricValue{
		style.MetricWindowPadding:     style.Vector(8, 8),
		style.MetricFramePadding:      style.Vector(5, 2),
		style.MetricItemSpacing:       style.Vector(6, 6),
		style.MetricItemInnerSpacing:  style.Vector(6, 6),
		style.MetricTouchExtraPadding: style.Vector(0, 0),
		style.MetricIndentSpacing:     style.Scalar(25),
		style.MetricScrollbarSize:     style.Scalar(15),
		style.MetricGrabMinSize:       style.Scalar(10),
		style.MetricWindowBorderSize:  style.Scalar(1),
		style.MetricChildBorderSize:   style.Scalar(1),
		style.MetricPopupBorderSize:   style.Scalar(1),
		style.MetricFrameBorderSize:   style.Scalar(1),
		style.MetricTabBorderSize:     style.Scalar(1),
		style.MetricWindowRounding:    style.Scalar(7),
		style.MetricChildRounding:     style.Scalar(4),
		style.MetricFrameRounding:     style.Scalar(3),
		style.MetricPopupRounding:     style.Scalar(4),
		style.MetricScrollbarRounding: style.Scalar(9),
		style.MetricGrabRounding:      style.Scalar(3),
		style.MetricLogSliderDeadzone: style.Scalar(4),
		style.MetricTabRounding:       style.Scalar(4),
	},
}
