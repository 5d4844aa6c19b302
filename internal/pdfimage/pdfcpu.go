package pdfimage

import "github.com/pdfcpu/pdfcpu/pkg/api"

func pdfcpuExtractImagesFile(inFile, outDir string, selectedPages []string) error {
	return api.ExtractImagesFile(inFile, outDir, selectedPages, nil)
}
