package vision

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/roadwatch/drowse-monitor/internal/domain/eyes"
)

// landmarkInputSize is the square input resolution of the landmark network.
const landmarkInputSize = 112

var (
	// errFaceOutsideFrame is returned when the face region does not overlap the frame.
	errFaceOutsideFrame = errors.New("face region outside frame")
	// errBadNetworkOutput is returned when the network yields fewer values
	// than the 68-point scheme requires.
	errBadNetworkOutput = errors.New("unexpected landmark network output")
)

// DNNLandmarkPredictor regresses 68 facial landmarks with an ONNX network
// run through the OpenCV DNN module. The network consumes a normalized
// square crop of the face region and outputs 136 coordinates in [0, 1]
// relative to that crop; Predict maps them back to frame pixel space.
type DNNLandmarkPredictor struct {
	// net is the loaded landmark regression network.
	net gocv.Net
}

// NewDNNLandmarkPredictor loads the landmark model from the given file.
func NewDNNLandmarkPredictor(modelPath string) (*DNNLandmarkPredictor, error) {
	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("load landmark model %q", modelPath)
	}

	return &DNNLandmarkPredictor{net: net}, nil
}

// Predict runs the network on the face region and returns the landmark set
// in frame pixel coordinates.
func (p *DNNLandmarkPredictor) Predict(gray gocv.Mat, face image.Rectangle) (eyes.Landmarks, error) {
	if gray.Empty() {
		return nil, errEmptyFrame
	}

	bounds := image.Rect(0, 0, gray.Cols(), gray.Rows())

	region := face.Intersect(bounds)
	if region.Empty() {
		return nil, errFaceOutsideFrame
	}

	crop := gray.Region(region)
	defer crop.Close()

	blob := gocv.BlobFromImage(
		crop,
		1.0/255.0,
		image.Pt(landmarkInputSize, landmarkInputSize),
		gocv.NewScalar(0, 0, 0, 0),
		false,
		false,
	)
	defer blob.Close()

	p.net.SetInput(blob, "")

	output := p.net.Forward("")
	defer output.Close()

	flat := output.Reshape(1, 1)
	defer flat.Close()

	if flat.Cols() < 2*eyes.LandmarkCount {
		return nil, fmt.Errorf("%w: %d values", errBadNetworkOutput, flat.Cols())
	}

	landmarks := make(eyes.Landmarks, eyes.LandmarkCount)
	for i := range landmarks {
		landmarks[i] = eyes.Point{
			X: float64(region.Min.X) + float64(flat.GetFloatAt(0, 2*i))*float64(region.Dx()),
			Y: float64(region.Min.Y) + float64(flat.GetFloatAt(0, 2*i+1))*float64(region.Dy()),
		}
	}

	return landmarks, nil
}

// Close releases the network.
func (p *DNNLandmarkPredictor) Close() error {
	if err := p.net.Close(); err != nil {
		return fmt.Errorf("close landmark model: %w", err)
	}

	return nil
}
