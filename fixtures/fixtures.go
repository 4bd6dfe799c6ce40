// Package fixtures embeds the static catalog and site copy served by EduLearn.
package fixtures

import _ "embed"

//go:embed catalog.yaml
var Catalog []byte

//go:embed site.yaml
var Site []byte
