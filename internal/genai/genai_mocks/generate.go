package genai_mocks

//go:generate mockgen -source=../generator.go -destination=genai_mocks.go -package=genai_mocks

// This file contains the go:generate directive to generate mocks for the
// Generator capability interface. To regenerate the mocks, run:
//   go generate ./internal/genai/genai_mocks
