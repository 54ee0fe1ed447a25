package site

// Fallback content served when a singleton row does not exist yet. The
// fallback is never persisted; the first admin save creates the real row.

func DefaultAbout() AboutPage {
	return AboutPage{
		Title: "Yolculuğum",
		Content: "1969 yılında memur bir ailenin ilk çocuğu olarak dünyaya geldim. " +
			"Gaziantep Ticaret Lisesi mezunuyum. 2008 yılında Lösemi hastalığı ile zorlu " +
			"mücadelem başladı ve yaklaşık 1,5 yıl sonra tamamen iyileştim. O zamana kadar " +
			"kendim için bir şey yapmadığımı fark ettim. İstanbul'a yerleştim, resim " +
			"dersleri almaya başladım. Ardından fotoğrafçılıkla tanıştım; profesyonel " +
			"çekimler yaptım, ödüller kazandım ve kişisel sergiler açtım. Sağlık " +
			"sebeplerinden dolayı fotoğrafçılığa devam edemeyince resimle yoluma devam " +
			"ettim ve renkli kuru boya kalemlerle çalışmaya karar verdim. Hayvan " +
			"portreleri yapmak, onlara olan minnettarlığımı sunmak gibi geliyor.",
		Image1: "https://picsum.photos/600/800?random=10",
		Image2: "https://picsum.photos/600/600?random=11",
	}
}

func DefaultAchievements() AchievementsPage {
	return AchievementsPage{
		Image: "https://picsum.photos/450/600?random=20",
	}
}
