package beatmap

import "encoding/json"

// ExportMark is the game-client shape of a mark. Field order is part of
// the file format.
type ExportMark struct {
	Time      float64   `json:"time"`
	LocationX LocationX `json:"locationX"`
	LocationY LocationY `json:"locationY"`
	Hit       Hit       `json:"hit"`
}

// ExportFile is the top-level object of an exported beat map
type ExportFile struct {
	BeatData []ExportMark `json:"beatData"`
}

// ExportOf strips editor-only fields (id, formVisible) from marks
func ExportOf(marks []HitEvent) ExportFile {
	out := ExportFile{BeatData: make([]ExportMark, 0, len(marks))}
	for _, m := range marks {
		out.BeatData = append(out.BeatData, ExportMark{
			Time:      m.Time,
			LocationX: m.LocationX,
			LocationY: m.LocationY,
			Hit:       m.Hit,
		})
	}
	return out
}

// EncodeExport renders marks as indented export JSON
func EncodeExport(marks []HitEvent) ([]byte, error) {
	return json.MarshalIndent(ExportOf(marks), "", "  ")
}

// DecodeExport parses an exported beat map
func DecodeExport(data []byte) (ExportFile, error) {
	var f ExportFile
	err := json.Unmarshal(data, &f)
	return f, err
}
