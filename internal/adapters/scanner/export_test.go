package scanner

// MatchLine exposes matchLine for testing.
var MatchLine = matchLine
