package preset

// histogramSamples caps the number of pixels counted for display histograms.
const histogramSamples = 150000

// ComputeHistogram counts R, G and B values for display. It samples with its
// own stride and plays no part in preset derivation.
func ComputeHistogram(px PixelBuffer) Histogram {
	var h Histogram
	n := px.PixelCount()
	stride := max(1, n/histogramSamples)
	for i := 0; i < n; i += stride {
		o := i * 4
		h.R[px.Pix[o]]++
		h.G[px.Pix[o+1]]++
		h.B[px.Pix[o+2]]++
	}
	return h
}
