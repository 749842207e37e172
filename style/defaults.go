package style

// defaultColors is the toolkit's stock dark palette.
var defaultColors = [RoleCount]Color{
	RoleText:                  {1.00, 1.00, 1.00, 1.00},
	RoleTextDisabled:          {0.50, 0.50, 0.50, 1.00},
	RoleWindowBg:              {0.06, 0.06, 0.06, 0.94},
	RoleChildBg:               {0.00, 0.00, 0.00, 0.00},
	RolePopupBg:               {0.08, 0.08, 0.08, 0.94},
	RoleBorder:                {0.43, 0.43, 0.50, 0.50},
	RoleBorderShadow:          {0.00, 0.00, 0.00, 0.00},
	RoleFrameBg:               {0.16, 0.29, 0.48, 0.54},
	RoleFrameBgHovered:        {0.26, 0.59, 0.98, 0.40},
	RoleFrameBgActive:         {0.26, 0.59, 0.98, 0.67},
	RoleTitleBg:               {0.04, 0.04, 0.04, 1.00},
	RoleTitleBgActive:         {0.16, 0.29, 0.48, 1.00},
	RoleTitleBgCollapsed:      {0.00, 0.00, 0.00, 0.51},
	RoleMenuBarBg:             {0.14, 0.14, 0.14, 1.00},
	RoleScrollbarBg:           {0.02, 0.02, 0.02, 0.53},
	RoleScrollbarGrab:         {0.31, 0.31, 0.31, 1.00},
	RoleScrollbarGrabHovered:  {0.41, 0.41, 0.41, 1.00},
	RoleScrollbarGrabActive:   {0.51, 0.51, 0.51, 1.00},
	RoleCheckMark:             {0.26, 0.59, 0.98, 1.00},
	RoleSliderGrab:            {0.24, 0.52, 0.88, 1.00},
	RoleSliderGrabActive:      {0.26, 0.59, 0.98, 1.00},
	RoleButton:                {0.26, 0.59, 0.98, 0.40},
	RoleButtonHovered:         {0.26, 0.59, 0.98, 1.00},
	RoleButtonActive:          {0.06, 0.53, 0.98, 1.00},
	RoleHeader:                {0.26, 0.59, 0.98, 0.31},
	RoleHeaderHovered:         {0.26, 0.59, 0.98, 0.80},
	RoleHeaderActive:          {0.26, 0.59, 0.98, 1.00},
	RoleSeparator:             {0.43, 0.43, 0.50, 0.50},
	RoleSeparatorHovered:      {0.10, 0.40, 0.75, 0.78},
	RoleSeparatorActive:       {0.10, 0.40, 0.75, 1.00},
	RoleResizeGrip:            {0.26, 0.59, 0.98, 0.20},
	RoleResizeGripHovered:     {0.26, 0.59, 0.98, 0.67},
	RoleResizeGripActive:      {0.26, 0.59, 0.98, 0.95},
	RoleTab:                   {0.18, 0.35, 0.58, 0.86},
	RoleTabHovered:            {0.26, 0.59, 0.98, 0.80},
	RoleTabActive:             {0.20, 0.41, 0.68, 1.00},
	RoleTabUnfocused:          {0.07, 0.10, 0.15, 0.97},
	RoleTabUnfocusedActive:    {0.14, 0.26, 0.42, 1.00},
	RoleDockingPreview:        {0.26, 0.59, 0.98, 0.70},
	RoleDockingEmptyBg:        {0.20, 0.20, 0.20, 1.00},
	RolePlotLines:             {0.61, 0.61, 0.61, 1.00},
	RolePlotLinesHovered:      {1.00, 0.43, 0.35, 1.00},
	RolePlotHistogram:         {0.90, 0.70, 0.00, 1.00},
	RolePlotHistogramHovered:  {1.00, 0.60, 0.00, 1.00},
	RoleTableHeaderBg:         {0.19, 0.19, 0.20, 1.00},
	RoleTableBorderStrong:     {0.31, 0.31, 0.35, 1.00},
	RoleTableBorderLight:      {0.23, 0.23, 0.25, 1.00},
	RoleTableRowBg:            {0.00, 0.00, 0.00, 0.00},
	RoleTableRowBgAlt:         {1.00, 1.00, 1.00, 0.06},
	RoleTextSelectedBg:        {0.26, 0.59, 0.98, 0.35},
	RoleDragDropTarget:        {1.00, 1.00, 0.00, 0.90},
	RoleNavHighlight:          {0.26, 0.59, 0.98, 1.00},
	RoleNavWindowingHighlight: {1.00, 1.00, 1.00, 0.70},
	RoleNavWindowingDimBg:     {0.80, 0.80, 0.80, 0.20},
	RoleModalWindowDimBg:      {0.80, 0.80, 0.80, 0.35},
}
