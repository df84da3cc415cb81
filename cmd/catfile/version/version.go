package version

/*
	These get stamped in by 'ldflags' at build time; the placeholder
	values survive only when somebody builds without the release script.
*/
var (
	GitCommit   string = "!!unknown!!"
	GitDirty    string = "!!unknown!!"
	GitTreeHash string = "!!unknown!!"
)
