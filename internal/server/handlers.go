package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/seam-carver/internal/imaging"
	"github.com/ironsheep/seam-carver/internal/seam"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "seam_load", "seam_highlight").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	s.mu.Lock()
	result, err := s.executeTool(params.Name, params.Arguments)
	s.mu.Unlock()
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches to the handler for name. Callers hold s.mu.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "seam_load":
		return s.handleSeamLoad(args)
	case "seam_info":
		return s.handleSeamInfo()
	case "seam_highlight":
		return s.handleSeamHighlight(args)
	case "seam_delete":
		return s.handleSeamDelete()
	case "seam_undo":
		return s.handleSeamUndo()
	case "seam_preview":
		return s.handleSeamPreview(args)
	case "seam_energy_map":
		return s.handleSeamEnergyMap(args)
	case "seam_sample_pixel":
		return s.handleSeamSamplePixel(args)
	case "seam_export":
		return s.handleSeamExport(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating absent arguments as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func (s *Server) active() (*session, error) {
	if s.sess == nil {
		return nil, errNoImage
	}
	return s.sess, nil
}

func (s *Server) scaleOrDefault(scale float64) float64 {
	if scale <= 0 {
		return s.cfg.Export.PreviewScale
	}
	return scale
}

// SessionInfo describes the state of the editing session.
type SessionInfo struct {
	Path      string `json:"path"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	EditCount int    `json:"edit_count"`
	Pending   bool   `json:"pending_seam"`
}

func (s *session) info() *SessionInfo {
	return &SessionInfo{
		Path:      s.path,
		Width:     s.grid().Width(),
		Height:    s.grid().Rows(),
		EditCount: s.editor.EditCount(),
		Pending:   s.pending != nil,
	}
}

// === Session Handlers ===

type seamLoadArgs struct {
	Path string `json:"path"`
}

// LoadResult combines file metadata with the new session state.
type LoadResult struct {
	*imaging.ImageInfo
	Session *SessionInfo `json:"session"`
}

func (s *Server) handleSeamLoad(args json.RawMessage) (interface{}, error) {
	var a seamLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	g, err := s.cache.LoadGrid(a.Path)
	if err != nil {
		return nil, err
	}

	s.sess = newSession(a.Path, g, s.cfg.Energy.Workers)
	s.logger.Info("image loaded", "path", a.Path, "width", info.Width, "height", info.Height)
	return &LoadResult{ImageInfo: info, Session: s.sess.info()}, nil
}

func (s *Server) handleSeamInfo() (interface{}, error) {
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	return sess.info(), nil
}

// === Editing Handlers ===

type seamHighlightArgs struct {
	Mode  string  `json:"mode"`
	Scale float64 `json:"scale"`
}

// HighlightResult describes a freshly highlighted seam.
type HighlightResult struct {
	Mode    string                 `json:"mode"`
	Columns []int                  `json:"columns"`
	Session *SessionInfo           `json:"session"`
	Preview *imaging.PreviewResult `json:"preview"`
}

func (s *Server) handleSeamHighlight(args json.RawMessage) (interface{}, error) {
	var a seamHighlightArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	mode, err := seam.ParseMode(a.Mode)
	if err != nil {
		return nil, err
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}

	sm, err := sess.highlight(mode)
	if err != nil {
		return nil, err
	}
	cols, err := columns(sess.grid(), sm)
	if err != nil {
		return nil, err
	}
	preview, err := imaging.Preview(sess.grid(), s.scaleOrDefault(a.Scale))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("seam highlighted", "mode", mode, "top", cols[0], "bottom", cols[len(cols)-1])
	return &HighlightResult{
		Mode:    mode.String(),
		Columns: cols,
		Session: sess.info(),
		Preview: preview,
	}, nil
}

func (s *Server) handleSeamDelete() (interface{}, error) {
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	if err := sess.deletePending(); err != nil {
		return nil, err
	}
	s.logger.Debug("seam deleted", "width", sess.grid().Width())
	return sess.info(), nil
}

// UndoResult reports what an undo reverted.
type UndoResult struct {
	Reverted string       `json:"reverted"` // "highlight" or "delete"
	Session  *SessionInfo `json:"session"`
}

func (s *Server) handleSeamUndo() (interface{}, error) {
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	highlight, err := sess.undo()
	if err != nil {
		return nil, err
	}
	r := &UndoResult{Reverted: "delete", Session: sess.info()}
	if highlight {
		r.Reverted = "highlight"
	}
	return r, nil
}

// === Inspection Handlers ===

type seamPreviewArgs struct {
	Scale   float64 `json:"scale"`
	Overlay float64 `json:"overlay"`
}

func (s *Server) handleSeamPreview(args json.RawMessage) (interface{}, error) {
	var a seamPreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	return imaging.Preview(sess.grid(), s.scaleOrDefault(a.Scale))
}

func (s *Server) handleSeamEnergyMap(args json.RawMessage) (interface{}, error) {
	var a seamPreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Overlay < 0 || a.Overlay > 1 {
		return nil, fmt.Errorf("overlay must be between 0 and 1, got %v", a.Overlay)
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	return imaging.EnergyPreview(sess.grid(), s.scaleOrDefault(a.Scale), a.Overlay)
}

type seamSamplePixelArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleSeamSamplePixel(args json.RawMessage) (interface{}, error) {
	var a seamSamplePixelArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	return imaging.SamplePixel(sess.grid(), a.X, a.Y)
}

// === Output Handlers ===

type seamExportArgs struct {
	Path string `json:"path"`
}

// ExportResult reports a written file.
type ExportResult struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleSeamExport(args json.RawMessage) (interface{}, error) {
	var a seamExportArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	if err := imaging.Save(a.Path, sess.grid()); err != nil {
		return nil, err
	}
	s.logger.Info("image exported", "path", a.Path)
	return &ExportResult{Path: a.Path, Width: sess.grid().Width(), Height: sess.grid().Rows()}, nil
}
