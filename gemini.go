package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const scanPrompt = `Analyse this photo of a square word-game board (Boggle style).

Return its letters as JSON in this exact shape:
{
  "dim": <number of rows, equal to the number of columns>,
  "rows": ["ABCD", "EFGH", ...]
}

Rules:
- Read rows top to bottom, letters left to right.
- Each row is a string of exactly "dim" upper-case letters A-Z.
- A die showing "Qu" is written as the single letter Q.
- Answer ONLY with the JSON, no comment and no markdown.`

// scannedBoard is the JSON shape requested from the model.
type scannedBoard struct {
	Dim  int      `json:"dim"`
	Rows []string `json:"rows"`
}

// ScanBoard sends a board photo to Gemini Flash and returns the populated board.
func (g *GeminiClient) ScanBoard(ctx context.Context, imageData []byte, mimeType string) (*Board, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role: "user",
			Parts: []*genai.Part{
				{Text: scanPrompt},
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: imageData}},
			},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.1)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}
	loggerFrom(ctx).Debug("Gemini scan response received.", "model", g.modelName, "bytes", len(text))
	return parseScannedBoard(text)
}

// parseScannedBoard turns the model's JSON answer into a board.
func parseScannedBoard(text string) (*Board, error) {
	var sb scannedBoard
	if err := json.Unmarshal([]byte(text), &sb); err != nil {
		return nil, fmt.Errorf("parse board JSON: %w\nraw response: %s", err, text)
	}

	if sb.Dim == 0 || len(sb.Rows) != sb.Dim {
		return nil, fmt.Errorf("invalid board: dim %d with %d rows", sb.Dim, len(sb.Rows))
	}
	for i, row := range sb.Rows {
		if n := len([]rune(row)); n != sb.Dim {
			return nil, fmt.Errorf("invalid board: row %d has %d letters, want %d", i, n, sb.Dim)
		}
	}

	b, err := NewBoard(sb.Dim)
	if err != nil {
		return nil, err
	}
	if err := b.SetTiles(strings.Join(sb.Rows, "")); err != nil {
		return nil, err
	}
	return b, nil
}
