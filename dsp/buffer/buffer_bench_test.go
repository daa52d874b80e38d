package buffer

import "testing"

func BenchmarkSampleChannelMajor(b *testing.B) {
	buf := New[float64, ChannelMajor](2, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.SetSample(1, i&4095, buf.Sample(0, i&4095)+1)
	}
}

func BenchmarkSampleInterleaved(b *testing.B) {
	buf := New[float64, Interleaved](2, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.SetSample(1, i&4095, buf.Sample(0, i&4095)+1)
	}
}

func BenchmarkChannelSpanSum(b *testing.B) {
	run := func(b *testing.B, sum func() float64) {
		b.ReportAllocs()
		acc := 0.0
		for i := 0; i < b.N; i++ {
			acc += sum()
		}
		_ = acc
	}
	b.Run("channel-major", func(b *testing.B) {
		buf := New[float64, ChannelMajor](2, 4096)
		ch := buf.ChannelSpan(1)
		run(b, func() float64 {
			s := 0.0
			for f := 0; f < ch.Len(); f++ {
				s += ch.At(f)
			}
			return s
		})
	})
	b.Run("interleaved", func(b *testing.B) {
		buf := New[float64, Interleaved](2, 4096)
		ch := buf.ChannelSpan(1)
		run(b, func() float64 {
			s := 0.0
			for f := 0; f < ch.Len(); f++ {
				s += ch.At(f)
			}
			return s
		})
	})
}
