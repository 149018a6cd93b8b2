package services

// DummyPasswordHash exposes the hash compared on logins for unknown emails.
var DummyPasswordHash = dummyPasswordHash
