package controllers

// ReadIdentifierFile exports readIdentifierFile for testing.
var ReadIdentifierFile = readIdentifierFile //nolint:gochecknoglobals // test export
