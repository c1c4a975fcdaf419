package config

// Bound triples for every option. Defaults mirror the shim's documented
// out-of-the-box behavior: QAT and software zlib enabled both directions,
// IAA disabled, an even 50/50 IAA routing weight once IAA is turned on,
// busy polling, deflate level 1, error-level diagnostics, one stats record
// per thousand streams.
var bounds = [OptionMax]Bound{
	UseQATCompress:          {Default: 1, Max: 1, Min: 0},
	UseQATUncompress:        {Default: 1, Max: 1, Min: 0},
	UseIAACompress:          {Default: 0, Max: 1, Min: 0},
	UseIAAUncompress:        {Default: 0, Max: 1, Min: 0},
	UseZlibCompress:         {Default: 1, Max: 1, Min: 0},
	UseZlibUncompress:       {Default: 1, Max: 1, Min: 0},
	IAACompressPercentage:   {Default: 50, Max: 100, Min: 0},
	IAAUncompressPercentage: {Default: 50, Max: 100, Min: 0},
	IAAPrependEmptyBlock:    {Default: 0, Max: 1, Min: 0},
	QATPeriodicalPolling:    {Default: 0, Max: 1, Min: 0},
	QATCompressionLevel:     {Default: 1, Max: 9, Min: 1},
	LogLevelOption:          {Default: 2, Max: 2, Min: 0},
	LogStatsSamples:         {Default: 1000, Max: 1000, Min: 0},
}
