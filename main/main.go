package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rawbytedev/fixstr"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	names := []string{
		"sensor/front/lidar",
		"sensor/rear/radar",
		"gateway",
		strings.Repeat("too-long/", 10),
	}
	other := fixstr.Truncate[[65]byte]("gateway")
	var topic fixstr.String64
	for i := 0; i < 10000; i++ {
		for _, n := range names {
			if err := topic.Set(n); err != nil {
				topic = fixstr.Truncate[[65]byte](n)
			}
			_ = topic.Compare(other)
			_ = topic.Len()
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
