package content

import "strings"

// SplitLines splits content on \n, dropping a \r that precedes it. A final
// terminator does not produce a trailing empty line.
func SplitLines(content string) []string {
	var lines []string
	for len(content) > 0 {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, strings.TrimSuffix(content[:i], "\r"))
		content = content[i+1:]
	}
	return lines
}

// TrimLineTerminator returns line without a single trailing \n or \r\n.
// The returned slice aliases line.
func TrimLineTerminator(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}
