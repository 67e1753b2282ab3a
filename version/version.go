package version

var (
	Version   = "0.1.0"
	Commit    = "none"
	BuildTime = "unknown"
)

func GetVersion() string {
	return Version
}

func GetFullVersion() string {
	return Version + " (" + Commit + ") built at " + BuildTime
}
