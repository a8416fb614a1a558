//go:build !linux

package hwuuid

// kernelFeatures vetoes nothing outside Linux.
func kernelFeatures() Features {
	return allFeatures
}
