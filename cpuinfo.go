package hwuuid

import "strings"

// allFeatures is the neutral element for Features.Intersect.
var allFeatures = Features{RDRAND: true, RDSEED: true, AES: true}

// parseCPUFlags extracts the kernel's view of the CPU features from
// /proc/cpuinfo content. The first "flags" line is authoritative; every
// processor lists the same flags. When no flags line is present the kernel
// expresses no opinion and all features are allowed.
func parseCPUFlags(content string) Features {
	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(line)
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		if strings.TrimSpace(parts[0]) != "flags" {
			continue
		}

		var fs Features
		for _, flag := range strings.Fields(parts[1]) {
			switch flag {
			case "rdrand":
				fs.RDRAND = true
			case "rdseed":
				fs.RDSEED = true
			case "aes":
				fs.AES = true
			}
		}

		return fs
	}

	return allFeatures
}
