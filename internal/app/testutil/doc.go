// Package testutil provides shared test doubles and fixtures.
//
//   - MockTranscriber / MockEnhancer: testify mocks of the provider
//     interfaces; they can assert that a staged file exists while called.
//   - MockTranscriptionDAO: testify mock of the persistence port.
//   - MockTranscriptionService / MockAudioService: mocks of the HTTP
//     service layer for handler tests.
//   - Fixtures: sample records and a helper that builds multipart
//     process-audio requests.
package testutil
