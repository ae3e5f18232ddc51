package version

// AppVersion is overridden at build time with
// -ldflags "-X orhub/internal/version.AppVersion=..."
var AppVersion = "dev"
