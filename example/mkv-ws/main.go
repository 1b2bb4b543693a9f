// Command mkv-ws serves a WebM file to MSE clients over a websocket:
// one binary message carrying the initialization segment (EBML header,
// segment header, Info, Tracks), then one per cluster.
package main

import (
	"bytes"
	"flag"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/b01o/mkv-element/ebml"
	"github.com/b01o/mkv-element/matroska"
)

var (
	addr = flag.String("addr", ":8080", "listen address")
	file = flag.String("file", "input.webm", "WebM file to serve")
)

func main() {
	flag.Parse()
	http.HandleFunc("/stream", serveStream)
	log.Println("listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

func serveStream(w http.ResponseWriter, r *http.Request) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()
	go func() {
		// Drain client frames so control messages keep flowing.
		for {
			if _, _, err := wsutil.NextReader(conn, ws.StateServerSide); err != nil {
				return
			}
		}
	}()

	f, err := os.Open(*file)
	if err != nil {
		log.Println("open:", err)
		return
	}
	defer f.Close()

	view, err := matroska.NewView(f)
	if err != nil {
		log.Println("parse:", err)
		return
	}
	seg := &view.Segments[0]

	if err = wsutil.WriteServerBinary(conn, initSegment(view, seg)); err != nil {
		return
	}
	for _, ref := range seg.Clusters {
		if _, err = f.Seek(ref.Offset, io.SeekStart); err != nil {
			return
		}
		buf := make([]byte, ref.HeaderLen+int(ref.Size))
		if _, err = io.ReadFull(f, buf); err != nil {
			return
		}
		if err = wsutil.WriteServerBinary(conn, buf); err != nil {
			return
		}
	}
}

// initSegment rebuilds the stream prologue MSE needs: the EBML header
// and an unknown-size segment holding Info and Tracks.
func initSegment(view *matroska.View, seg *matroska.SegmentView) []byte {
	var buf bytes.Buffer
	buf.Write(ebml.Marshal(&view.Ebml))

	hdr := ebml.Header{ID: matroska.IDSegment, Size: ebml.UnknownSize()}
	hdr.WriteTo(&buf)
	buf.Write(ebml.Marshal(&seg.Info))
	if seg.Tracks != nil {
		buf.Write(ebml.Marshal(seg.Tracks))
	}
	return buf.Bytes()
}
