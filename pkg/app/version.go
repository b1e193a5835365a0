package app

import "github.com/small-frappuccino/bottemplate/pkg/util"

// Version is the current version of the bot template core.
const Version = util.CoreVersion

// AppVersion is the version of the application built on the template.
func AppVersion() string {
	return util.AppVersion
}

// SetAppVersion sets the version of the application built on the template.
func SetAppVersion(v string) {
	util.SetAppVersion(v)
}
