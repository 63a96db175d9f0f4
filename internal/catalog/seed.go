package catalog

// DefaultItems returns the storefront's stock catalog. Order within each
// category is the declared catalog order.
func DefaultItems() []Item {
	return []Item{
		// GPUs
		gpu("gpu-rtx4060", "GeForce RTX 4060 Twin Edge 8GB", "ZOTAC", TierMid, 32999, 29999, 110, 75, 38),
		gpu("gpu-rx7600", "Radeon RX 7600 Pulse 8GB", "Sapphire", TierMid, 28999, 26499, 100, 68, 34),
		gpu("gpu-rtx4060ti", "GeForce RTX 4060 Ti Ventus 2X 8GB", "MSI", TierHigh, 44999, 41999, 140, 98, 52),
		gpu("gpu-rx7800xt", "Radeon RX 7800 XT Nitro+ 16GB", "Sapphire", TierHigh, 54999, 51999, 165, 120, 68),
		gpu("gpu-rtx4070super", "GeForce RTX 4070 SUPER Dual 12GB", "ASUS", TierUltra, 64999, 61999, 190, 140, 80),
		gpu("gpu-rx7900xt", "Radeon RX 7900 XT Gaming OC 20GB", "Gigabyte", TierUltra, 79999, 74999, 210, 160, 95),
		gpu("gpu-rtx4080super", "GeForce RTX 4080 SUPER TUF 16GB", "ASUS", TierFlagship, 109999, 104999, 260, 200, 120),
		gpu("gpu-rtx4090", "GeForce RTX 4090 ROG Strix 24GB", "ASUS", TierFlagship, 189999, 179999, 320, 250, 150),

		// Monitors
		monitor("mon-24-1080-165", "24G2SP 24\" IPS 165Hz", "AOC", TierMid, 13999, 12499, 165, Resolution1080p),
		monitor("mon-25-1080-240", "XL2546K 24.5\" TN 240Hz", "BenQ ZOWIE", TierHigh, 23999, 21999, 240, Resolution1080p),
		monitor("mon-27-1440-165", "G27Q 27\" IPS 165Hz", "Gigabyte", TierMid, 19999, 17999, 165, Resolution1440p),
		monitor("mon-27-1440-170", "27GP850 27\" Nano IPS 170Hz", "LG UltraGear", TierHigh, 27999, 25999, 170, Resolution1440p),
		monitor("mon-27-1440-240", "PG27AQDM 27\" OLED 240Hz", "ASUS ROG", TierUltra, 69999, 64999, 240, Resolution1440p),
		monitor("mon-27-4k-144", "M28U 28\" IPS 4K 144Hz", "Gigabyte", TierUltra, 59999, 54999, 144, Resolution4K),
		monitor("mon-32-4k-240", "Odyssey OLED G8 32\" 4K 240Hz", "Samsung", TierFlagship, 119999, 109999, 240, Resolution4K),

		// Keyboards
		peripheral("kb-k552", "K552 Kumara Mechanical", "Redragon", CategoryKeyboard, TierMid, 3499, 2999),
		peripheral("kb-alloy-origins", "Alloy Origins Core", "HyperX", CategoryKeyboard, TierHigh, 8999, 7499),
		peripheral("kb-huntsman-v2", "Huntsman V2 Analog", "Razer", CategoryKeyboard, TierUltra, 18999, 16999),
		peripheral("kb-60he", "60HE+ Rapid Trigger", "Wooting", CategoryKeyboard, TierFlagship, 21999, 19999),
		peripheral("kb-g213", "G213 Prodigy RGB", "Logitech", CategoryKeyboard, TierMid, 4495, 3995),

		// Mice
		peripheral("mouse-g102", "G102 Lightsync", "Logitech", CategoryMouse, TierMid, 1795, 1495),
		peripheral("mouse-deathadder-v3", "DeathAdder V3", "Razer", CategoryMouse, TierHigh, 6999, 5999),
		peripheral("mouse-superlight-2", "G Pro X Superlight 2", "Logitech", CategoryMouse, TierUltra, 14995, 12995),
		peripheral("mouse-viper-v3-pro", "Viper V3 Pro", "Razer", CategoryMouse, TierFlagship, 15999, 14999),
		peripheral("mouse-rival-3", "Rival 3", "SteelSeries", CategoryMouse, TierMid, 2999, 2499),

		// Headsets
		peripheral("hs-stinger-2", "Cloud Stinger 2", "HyperX", CategoryHeadset, TierMid, 3990, 2990),
		peripheral("hs-cloud-iii", "Cloud III", "HyperX", CategoryHeadset, TierHigh, 8990, 7490),
		peripheral("hs-nova-7", "Arctis Nova 7 Wireless", "SteelSeries", CategoryHeadset, TierUltra, 17999, 15999),
		peripheral("hs-blackshark-v2-pro", "BlackShark V2 Pro", "Razer", CategoryHeadset, TierUltra, 15999, 13999),
		peripheral("hs-nova-pro", "Arctis Nova Pro Wireless", "SteelSeries", CategoryHeadset, TierFlagship, 34999, 31999),
	}
}

func gpu(id, title, brand string, tier Tier, price, discount, fps1080, fps1440, fps4k int) Item {
	return Item{
		ID:            id,
		Title:         title,
		Brand:         brand,
		Image:         imagePath(id),
		Price:         price,
		DiscountPrice: discount,
		Category:      CategoryGPU,
		Tier:          tier,
		FPS1080:       fps1080,
		FPS1440:       fps1440,
		FPS4K:         fps4k,
	}
}

func monitor(id, title, brand string, tier Tier, price, discount, hz int, res Resolution) Item {
	return Item{
		ID:            id,
		Title:         title,
		Brand:         brand,
		Image:         imagePath(id),
		Price:         price,
		DiscountPrice: discount,
		Category:      CategoryMonitor,
		Tier:          tier,
		RefreshRate:   hz,
		Resolution:    res,
	}
}

func peripheral(id, title, brand string, cat Category, tier Tier, price, discount int) Item {
	return Item{
		ID:            id,
		Title:         title,
		Brand:         brand,
		Image:         imagePath(id),
		Price:         price,
		DiscountPrice: discount,
		Category:      cat,
		Tier:          tier,
	}
}

func imagePath(id string) string {
	return "/images/products/" + id + ".webp"
}
