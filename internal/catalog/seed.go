package catalog

import "audiophile_back_end/internal/models"

// set construit les trois variantes responsive d'une image à partir du dossier produit
func set(dir, file string) models.ImageSet {
	return models.ImageSet{
		Mobile:  "/assets/" + dir + "/mobile/" + file,
		Tablet:  "/assets/" + dir + "/tablet/" + file,
		Desktop: "/assets/" + dir + "/desktop/" + file,
	}
}

func gallery(dir string) models.ProductGallery {
	return models.ProductGallery{
		First:  set(dir, "image-gallery-1.jpg"),
		Second: set(dir, "image-gallery-2.jpg"),
		Third:  set(dir, "image-gallery-3.jpg"),
	}
}

func related(slug, name, dir string) models.RelatedProduct {
	return models.RelatedProduct{
		Slug:  slug,
		Name:  name,
		Image: set(dir, "image-category-page-preview.jpg"),
	}
}

// Les prix sont en unités mineures, comme partout ailleurs dans le système.
var products = []models.Product{
	{
		ID:          "1",
		Slug:        "xx99-mark-ii-headphones",
		Name:        "XX99 Mark II Headphones",
		Category:    "headphones",
		Price:       2999,
		New:         true,
		Description: "The new XX99 Mark II headphones is the pinnacle of pristine audio. It redefines your premium headphone experience by reproducing the balanced depth and precision of studio-quality sound.",
		Features: `Featuring a genuine leather head strap and premium earcups, these headphones deliver superior comfort for those who like to enjoy endless listening. It includes intuitive controls designed for any situation. Whether you are taking a business call or just in your own personal space, the auto on/off and pause features ensure that you will never miss a beat.

The advanced Active Noise Cancellation with built-in equalizer allow you to experience your audio world on your terms. It lets you enjoy your audio in peace, but quickly interact with your surroundings when you need to. Combined with Bluetooth 5. 0 compliant connectivity and 17 hour battery life, the XX99 Mark II headphones gives you superior sound, cutting-edge technology, and a modern design aesthetic.`,
		Includes: []models.BoxItem{
			{Quantity: 1, Item: "Headphone unit"},
			{Quantity: 2, Item: "Replacement earcups"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "3.5mm 5m audio cable"},
			{Quantity: 1, Item: "Travel bag"},
		},
		Images: models.ImageSet{
			Mobile:  "/assets/home/mobile/image-header.jpg",
			Tablet:  "/assets/home/tablet/image-header.jpg",
			Desktop: "/assets/home/desktop/image-hero.jpg",
		},
		Gallery: gallery("product-xx99-mark-two-headphones"),
		Others: []models.RelatedProduct{
			related("xx99-mark-i-headphones", "XX99 Mark I", "product-xx99-mark-one-headphones"),
			related("xx59-headphones", "XX59", "product-xx59-headphones"),
			related("zx9-speaker", "ZX9 Speaker", "product-zx9-speaker"),
		},
	},
	{
		ID:          "2",
		Slug:        "xx99-mark-i-headphones",
		Name:        "XX99 Mark I Headphones",
		Category:    "headphones",
		Price:       1750,
		New:         false,
		Description: "As the gold standard for headphones, the classic XX99 Mark I offers detailed and accurate audio reproduction for audiophiles, mixing engineers, and music aficionados alike in studios and on the go.",
		Features: `As the headphones all others are measured against, the XX99 Mark I demonstrates over five decades of audio expertise, redefining the critical listening experience. This pair of closed-back headphones are made of industrial, aerospace-grade materials to emphasize durability at a relatively light weight of 11 oz.

From the handcrafted microfiber ear cushions to the robust metal headband with inner damped steel core, the components work together to deliver comfort and uncompromising listening experience.`,
		Includes: []models.BoxItem{
			{Quantity: 1, Item: "Headphone unit"},
			{Quantity: 2, Item: "Replacement earcups"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "3.5mm 5m audio cable"},
		},
		Images:  set("product-xx99-mark-one-headphones", "image-product.jpg"),
		Gallery: gallery("product-xx99-mark-one-headphones"),
		Others: []models.RelatedProduct{
			related("xx99-mark-ii-headphones", "XX99 Mark II", "product-xx99-mark-two-headphones"),
			related("xx59-headphones", "XX59", "product-xx59-headphones"),
			related("zx9-speaker", "ZX9 Speaker", "product-zx9-speaker"),
		},
	},
	{
		ID:          "3",
		Slug:        "xx59-headphones",
		Name:        "XX59 Headphones",
		Category:    "headphones",
		Price:       899,
		New:         false,
		Description: "Enjoy your audio almost anywhere and customize it to your specific tastes with the XX59 headphones. The stylish yet durable versatile wireless headset is a brilliant companion at home or on the move.",
		Features: `These headphones have been created from durable, high-quality materials tough enough to take anywhere. Its compact folding design fuses comfort and minimalist style making it perfect for travel. Flawless transmission is assured by the latest wireless technology engineered for audio synchronization with videos.

More than a simple pair of headphones, this headset features a pair of built-in microphones for clear, hands-free calling when paired with a compatible smartphone. Controlling music and calls is also intuitive thanks to easy-access touch buttons on the earcups. Regardless of how you use the XX59 headphones, you can do so all day thanks to an impressive 30-hour battery life that can be rapidly recharged via USB-C.`,
		Includes: []models.BoxItem{
			{Quantity: 1, Item: "Headphone unit"},
			{Quantity: 2, Item: "Replacement earcups"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "3.5mm 5m audio cable"},
		},
		Images:  set("product-xx59-headphones", "image-product.jpg"),
		Gallery: gallery("product-xx59-headphones"),
		Others: []models.RelatedProduct{
			related("xx99-mark-ii-headphones", "XX99 Mark II", "product-xx99-mark-two-headphones"),
			related("xx99-mark-i-headphones", "XX99 Mark I", "product-xx99-mark-one-headphones"),
			related("zx9-speaker", "ZX9 Speaker", "product-zx9-speaker"),
		},
	},
	{
		ID:          "4",
		Slug:        "zx9-speaker",
		Name:        "ZX9 Speaker",
		Category:    "speakers",
		Price:       4500,
		New:         true,
		Description: "Upgrade your sound system with the all new ZX9 active speaker. It's a bookshelf speaker system that offers truly wireless connectivity -- creating new possibilities for more pleasing and practical audio setups.",
		Features: `Connect via Bluetooth or nearly any wired source. This speaker features optical, digital coaxial, USB Type-B, stereo RCA, and stereo XLR inputs, allowing you to have up to five wired source devices connected for easy switching. Improved bluetooth technology offers near lossless audio quality at up to 328ft (100m).

Discover clear, more natural sounding highs than the competition with ZX9's signature planar diaphragm tweeter. Equally important is its powerful room-shaking bass courtesy of a 6.5" aluminum alloy bass unit. You'll be able to enjoy equal sound quality whether in a large room or small den. Furthermore, you will experience new sensations from old songs since it can respond to even the subtle waveforms.`,
		Includes: []models.BoxItem{
			{Quantity: 2, Item: "Speaker unit"},
			{Quantity: 2, Item: "Speaker cloth panel"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "3.5mm 10m audio cable"},
			{Quantity: 1, Item: "10m optical cable"},
		},
		Images:  set("product-zx9-speaker", "image-product.jpg"),
		Gallery: gallery("product-zx9-speaker"),
		Others: []models.RelatedProduct{
			related("zx7-speaker", "ZX7 Speaker", "product-zx7-speaker"),
			related("xx99-mark-i-headphones", "XX99 Mark I", "product-xx99-mark-one-headphones"),
			related("xx59-headphones", "XX59", "product-xx59-headphones"),
		},
	},
	{
		ID:          "5",
		Slug:        "zx7-speaker",
		Name:        "ZX7 Speaker",
		Category:    "speakers",
		Price:       3500,
		New:         false,
		Description: "Stream high quality sound wirelessly with minimal loss. The ZX7 bookshelf speaker uses high-end audiophile components that represents the top of the line powered speakers for home or studio use.",
		Features: `Reap the advantages of a flat diaphragm tweeter cone. This provides a fast response rate and excellent high frequencies that lower tiered bookshelf speakers cannot provide. The woofers are made from aluminum that produces a unique and clear sound. XLR inputs allow you to connect to a mixer for more advanced usage.

The ZX7 speaker is the perfect blend of stylish design and high performance. It houses an encased MDF wooden enclosure which minimises acoustic resonance. Dual connectivity allows pairing through bluetooth or traditional optical and RCA input. Switch input sources and control volume at your finger tips with the included wireless remote. This versatile speaker is equipped to deliver an authentic listening experience.`,
		Includes: []models.BoxItem{
			{Quantity: 2, Item: "Speaker unit"},
			{Quantity: 2, Item: "Speaker cloth panel"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "3.5mm 7.5m audio cable"},
			{Quantity: 1, Item: "7.5m optical cable"},
		},
		Images:  set("product-zx7-speaker", "image-product.jpg"),
		Gallery: gallery("product-zx7-speaker"),
		Others: []models.RelatedProduct{
			related("zx9-speaker", "ZX9 Speaker", "product-zx9-speaker"),
			related("xx99-mark-i-headphones", "XX99 Mark I", "product-xx99-mark-one-headphones"),
			related("yx1-earphones", "YX1 Earphones", "product-yx1-earphones"),
		},
	},
	{
		ID:          "6",
		Slug:        "yx1-earphones",
		Name:        "YX1 Wireless Earphones",
		Category:    "earphones",
		Price:       599,
		New:         true,
		Description: "Tailor your listening experience with bespoke dynamic drivers from the new YX1 Wireless Earphones. Enjoy incredible high-fidelity sound even in noisy environments with its active noise cancellation feature.",
		Features: `Experience unrivalled stereo sound thanks to innovative acoustic technology. With improved ergonomics designed for full day wearing, these revolutionary earphones have been finely crafted to provide you with the perfect fit, delivering complete comfort all day long while enjoying exceptional noise isolation and truly immersive sound.

The YX1 Wireless Earphones features customizable controls for volume, music, calls, and voice assistants built into both earbuds. The new 7-hour battery life can be extended up to 28 hours with the charging case, giving you uninterrupted play time. Exquisite craftsmanship with a splash resistant design now available in an all new white and grey color scheme as well as the popular classic black.`,
		Includes: []models.BoxItem{
			{Quantity: 2, Item: "Earphone unit"},
			{Quantity: 6, Item: "Multi-size earplugs"},
			{Quantity: 1, Item: "User manual"},
			{Quantity: 1, Item: "USB-C charging cable"},
			{Quantity: 1, Item: "Travel pouch"},
		},
		Images:  set("product-yx1-earphones", "image-product.jpg"),
		Gallery: gallery("product-yx1-earphones"),
		Others: []models.RelatedProduct{
			related("xx99-mark-i-headphones", "XX99 Mark I", "product-xx99-mark-one-headphones"),
			related("xx59-headphones", "XX59", "product-xx59-headphones"),
			related("zx9-speaker", "ZX9 Speaker", "product-zx9-speaker"),
		},
	},
}
