package driver

import (
	"runtime"
	"strconv"

	"go.uber.org/zap"

	"apexts/internal/buildpipeline"
	"apexts/internal/emit"
	"apexts/internal/parser"
	"apexts/internal/project"
	"apexts/internal/typemap"
)

const (
	DefaultExtension      = ".cls"
	DefaultMaxDiagnostics = 100
)

// Options configures a pipeline run. Zero values mean defaults.
type Options struct {
	ExportMarker     string
	RemoteAnnotation string
	Extension        string
	Namespace        string
	Header           bool
	Mapper           *typemap.Mapper
	Jobs             int
	MaxDiagnostics   int
	MaxTokenLength   uint32
	// Timings добавляет в итоговый Bag info-диагностику OBS6001.
	Timings  bool
	Logger   *zap.SugaredLogger
	Progress buildpipeline.ProgressSink
	Cache    *DiskCache
}

func (o Options) withDefaults() Options {
	if o.ExportMarker == "" {
		o.ExportMarker = parser.DefaultExportMarker
	}
	if o.RemoteAnnotation == "" {
		o.RemoteAnnotation = parser.DefaultRemoteAnnotation
	}
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if o.Namespace == "" {
		o.Namespace = emit.DefaultNamespace
	}
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = DefaultMaxDiagnostics
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
	return o
}

func (o Options) parserOptions() parser.Options {
	return parser.Options{
		ExportMarker:     o.ExportMarker,
		RemoteAnnotation: o.RemoteAnnotation,
		MaxTokenLength:   o.MaxTokenLength,
	}
}

// digest covers every option that changes the outcome of ConvertFile.
// Emitter options are not part of it: cached entries hold parse results only.
func (o Options) digest() project.Digest {
	return project.OptionsDigest(
		strconv.Itoa(int(diskCacheSchemaVersion)),
		o.ExportMarker,
		o.RemoteAnnotation,
		strconv.FormatUint(uint64(o.MaxTokenLength), 10),
	)
}
