package cfgdir

// checkDirectory 检查配置目录的存在性与可读性。
//
// 未启用 [FeatureConfig] 时跳过。目录不存在且非必需时放行，
// 此时 loadFile 也会因文件不存在而返回空结果。
func (r *Resolver) checkDirectory(dir string) error {
	if !r.opts.isFeatureEnabled(FeatureConfig) {
		return nil
	}

	if !r.opts.fsys.Exists(dir) {
		if r.opts.defaults.IsRequired {
			return &DirectoryError{Path: dir, Err: ErrMissingDirectory}
		}
		r.logger().Debug("Config directory does not exist, continuing without file", "dir", dir)

		return nil
	}

	if !r.opts.fsys.IsDirectoryReadable(dir) {
		return &DirectoryError{Path: dir, Err: ErrUnreadableDirectory}
	}

	return nil
}
