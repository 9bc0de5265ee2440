package progress

import (
	"fmt"
	"io"

	"github.com/harness/github-deploy/util/common"

	"github.com/pterm/pterm"
)

type BarWriter struct {
	bar *pterm.ProgressbarPrinter
}

func (w *BarWriter) Write(p []byte) (int, error) {
	n := len(p)
	w.bar.Add(n)
	return n, nil
}

// Reader wraps reader so that every byte read advances a progress bar titled
// with fileName and its size. The returned func stops the bar.
func Reader(contentLength int64, reader io.Reader, fileName string) (io.Reader, func()) {
	title := fmt.Sprintf("%s (%s)", fileName, common.GetSize(contentLength))
	bar := pterm.DefaultProgressbar.
		WithTitle(title).WithRemoveWhenDone(false)

	if contentLength > 0 {
		bar = bar.WithTotal(int(contentLength))
	}

	pb, err := bar.Start()
	if err != nil {
		return reader, func() {}
	}

	r := io.TeeReader(reader, &BarWriter{pb})
	return r, func() { _, _ = pb.Stop() }
}
