package media

import "regexp"

var mimePattern = regexp.MustCompile(`^image/[a-z0-9.+-]+$`)
