// Package config loads the run configuration for gaaqoo.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A YAML file, by default ~/.config/gaaqoo/default.yml.
//
// # YAML schema
//
// Keys are upper case so existing gaaqoo config files keep working:
//
//	SRC_DIR: ~/Pictures/gaaqoo-src
//	DST_DIR: $HOME/Pictures/gaaqoo-dst
//	SUFFIX: [.jpg, .JPG, .jpeg, .JPEG]
//	EXCLUDE: [_EXCLUDE_, _NG_]
//	DST_IMG_SIZE: [800, 480]
//	FONT: /usr/share/fonts/truetype/msttcorefonts/Verdana_Bold.ttf
//	FONT_SIZE: 30
//	KEEP_FAILED: true
//
// SRC_DIR, DST_DIR and FONT support ~ and $VAR expansion. Both directories
// are normalized to end with a path separator. An empty FONT selects the
// embedded Go Bold face.
package config
