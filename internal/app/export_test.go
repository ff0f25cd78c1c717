package app

// PublishTargets exposes publishTargets for testing.
var PublishTargets = publishTargets
