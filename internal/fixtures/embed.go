package fixtures

import "embed"

// DemoFile is the bundled demo fixture inside Data.
const DemoFile = "data/demo.json"

// Data holds the bundled fixture documents.
//
//go:embed data/*.json
var Data embed.FS
