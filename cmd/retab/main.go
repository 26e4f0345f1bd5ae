package main

import (
	"flag"
	"fmt"
	"os"

	"retab/internal/config"
	"retab/internal/logger"
	"retab/internal/storage"
	"retab/pkg/api"
	"retab/pkg/traffic"
)

// main 命令行入口：为HAR导出或单个原始请求文件生成标签
func main() {
	var (
		cfgPath  = flag.String("config", "", "配置文件路径（YAML，缺省使用内置默认值）")
		harPath  = flag.String("har", "", "待标注的HAR文件")
		reqPath  = flag.String("req", "", "单个原始HTTP请求文件")
		outPath  = flag.String("out", "", "标注后HAR的输出路径（缺省打印逐条结果）")
		useStore = flag.Bool("store", false, "把标签历史写入sqlite")
	)
	flag.Parse()

	if *harPath == "" && *reqPath == "" {
		fmt.Fprintln(os.Stderr, "用法: retab -har capture.har [-out labeled.har] | retab -req request.txt")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := config.NewConfig()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	l := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Writers: cfg.Log.Writer,
		File:    cfg.Log.File,
	})

	var store *storage.Store
	if *useStore {
		st, err := storage.Open(cfg.Sqlite.Dsn, cfg.Sqlite.Prefix, l)
		if err != nil {
			l.Error("打开历史存储失败", "dsn", cfg.Sqlite.Dsn, "error", err)
			os.Exit(1)
		}
		defer st.Close()
		store = st
	}

	svc := api.NewService(cfg.Options(), store, nil, l)

	if *reqPath != "" {
		if err := labelRawFile(svc, *reqPath); err != nil {
			l.Error("处理原始请求文件失败", "path", *reqPath, "error", err)
			os.Exit(1)
		}
	}

	if *harPath != "" {
		if err := labelHARFile(svc, *harPath, *outPath); err != nil {
			l.Error("处理HAR文件失败", "path", *harPath, "error", err)
			os.Exit(1)
		}
	}
}

// labelRawFile 标注单个原始HTTP请求文件并打印结果
func labelRawFile(svc api.Service, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	label := svc.LabelCapture(traffic.Service{}, traffic.ParseRaw(data))
	fmt.Println(label)
	return nil
}

// labelHARFile 标注HAR中的全部请求，按需写出标注后的副本
func labelHARFile(svc api.Service, path, out string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	annotated, entries, err := svc.LabelHAR(data)
	if err != nil {
		return err
	}

	if out != "" {
		if err := os.WriteFile(out, annotated, 0o644); err != nil {
			return err
		}
	} else {
		for _, e := range entries {
			fmt.Printf("%4d  %-10s  %s\n", e.Index, e.Shape, e.Label)
		}
	}

	stats := svc.Stats()
	fmt.Fprintf(os.Stderr, "共标注 %d 个请求\n", stats.Total)
	return nil
}
