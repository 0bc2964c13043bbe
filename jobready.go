// Package jobready provides a technical-interview question bank with a
// chatbot that answers from a local dataset and falls back to a generative
// model, learning every generated answer back into the dataset.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, gcs/, sqlite/, gemini/).
package jobready
